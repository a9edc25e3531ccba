package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openelect/election-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(voterID, password, fullName, role string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &domain.User{
		ID:           uuid.New(),
		VoterID:      voterID,
		FullName:     fullName,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	r.users[voterID] = user
	return user
}

func (r *stubUserRepo) GetByVoterID(_ context.Context, voterID string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[voterID]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.VoterID] = user
	return nil
}

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, "test-secret", 15*time.Minute, zerolog.Nop())
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add("VOT-001", "s3cret", "Alice Example", domain.RoleVoter)
	svc := newAuthService(repo)

	identity, token, err := svc.Login(context.Background(), "VOT-001", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, identity)
	require.NotEmpty(t, token)

	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "VOT-001", identity.VoterID)
	assert.Equal(t, "Alice Example", identity.FullName)
	assert.Equal(t, domain.RoleVoter, identity.Role)
	assert.False(t, identity.HasVoted)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("VOT-001", "s3cret", "Alice Example", domain.RoleVoter)
	svc := newAuthService(repo)

	identity, token, err := svc.Login(context.Background(), "VOT-001", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, identity)
	assert.Empty(t, token)
}

func TestAuthServiceLoginUnknownVoter(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), "VOT-404", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthServiceLoginRepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.err = assert.AnError
	svc := newAuthService(repo)

	_, _, err := svc.Login(context.Background(), "VOT-001", "s3cret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshReflectsStoredState(t *testing.T) {
	repo := newStubUserRepo()
	user := repo.add("VOT-001", "s3cret", "Alice Example", domain.RoleVoter)
	svc := newAuthService(repo)

	identity, err := svc.Refresh(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, identity.HasVoted)

	// The store moves on; a later refresh must see it.
	user.HasVoted = true
	identity, err = svc.Refresh(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, identity.HasVoted)
}

func TestRefreshUnknownUser(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, err := svc.Refresh(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	identity := domain.Identity{
		ID:       uuid.New(),
		VoterID:  "VOT-042",
		FullName: "Bob Builder",
		Role:     domain.RoleAdmin,
		HasVoted: true,
	}

	token, err := svc.IssueSession(identity)
	require.NoError(t, err)

	restored, err := svc.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, identity, *restored)
}

func TestParseSessionRejectsForgedToken(t *testing.T) {
	issuer := NewAuthService(newStubUserRepo(), "other-secret", time.Hour, zerolog.Nop())
	svc := newAuthService(newStubUserRepo())

	token, err := issuer.IssueSession(domain.Identity{ID: uuid.New(), VoterID: "VOT-1", Role: domain.RoleVoter})
	require.NoError(t, err)

	_, err = svc.ParseSession(token)
	require.Error(t, err)

	_, err = svc.ParseSession("not-a-token")
	require.Error(t, err)
}
