package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type stubVoteRepo struct {
	err   error
	votes []*domain.Vote
}

func (r *stubVoteRepo) RecordVote(_ context.Context, vote *domain.Vote) error {
	if r.err != nil {
		return r.err
	}
	r.votes = append(r.votes, vote)
	return nil
}

type stubGuard struct {
	busy     bool
	err      error
	acquired int
	released int
}

func (g *stubGuard) Acquire(_ context.Context, _ uuid.UUID) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	g.acquired++
	return !g.busy, nil
}

func (g *stubGuard) Release(_ context.Context, _ uuid.UUID) error {
	g.released++
	return nil
}

func voter() domain.Identity {
	return domain.Identity{
		ID:       uuid.New(),
		VoterID:  "VOT-007",
		FullName: "Carol Voter",
		Role:     domain.RoleVoter,
	}
}

func TestCastVoteSuccess(t *testing.T) {
	repo := &stubVoteRepo{}
	guard := &stubGuard{}
	svc := NewVoteService(repo, guard, zerolog.Nop())

	input := ports.CastVoteInput{Voter: voter(), CandidateID: uuid.New()}
	err := svc.CastVote(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, repo.votes, 1)
	assert.Equal(t, input.Voter.ID, repo.votes[0].UserID)
	assert.Equal(t, input.CandidateID, repo.votes[0].CandidateID)
	assert.False(t, repo.votes[0].VotedAt.IsZero())
	assert.Equal(t, 1, guard.acquired)
	assert.Equal(t, 1, guard.released)
}

func TestCastVoteSessionAlreadyVoted(t *testing.T) {
	repo := &stubVoteRepo{}
	guard := &stubGuard{}
	svc := NewVoteService(repo, guard, zerolog.Nop())

	v := voter()
	v.HasVoted = true
	err := svc.CastVote(context.Background(), ports.CastVoteInput{Voter: v, CandidateID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrAlreadyVoted)

	// Refused before any backend work.
	assert.Empty(t, repo.votes)
	assert.Zero(t, guard.acquired)
}

func TestCastVoteDuplicateInStore(t *testing.T) {
	repo := &stubVoteRepo{err: domain.ErrAlreadyVoted}
	svc := NewVoteService(repo, &stubGuard{}, zerolog.Nop())

	err := svc.CastVote(context.Background(), ports.CastVoteInput{Voter: voter(), CandidateID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestCastVoteCandidateGone(t *testing.T) {
	repo := &stubVoteRepo{err: domain.ErrCandidateNotFound}
	svc := NewVoteService(repo, &stubGuard{}, zerolog.Nop())

	err := svc.CastVote(context.Background(), ports.CastVoteInput{Voter: voter(), CandidateID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestCastVoteGuardBusy(t *testing.T) {
	repo := &stubVoteRepo{}
	guard := &stubGuard{busy: true}
	svc := NewVoteService(repo, guard, zerolog.Nop())

	err := svc.CastVote(context.Background(), ports.CastVoteInput{Voter: voter(), CandidateID: uuid.New()})
	require.ErrorIs(t, err, domain.ErrVoteInProgress)
	assert.Empty(t, repo.votes)
}

func TestCastVoteGuardUnavailable(t *testing.T) {
	repo := &stubVoteRepo{}
	guard := &stubGuard{err: assert.AnError}
	svc := NewVoteService(repo, guard, zerolog.Nop())

	// An unavailable guard must not block voting; the store constraint
	// still protects the one-vote invariant.
	err := svc.CastVote(context.Background(), ports.CastVoteInput{Voter: voter(), CandidateID: uuid.New()})
	require.NoError(t, err)
	assert.Len(t, repo.votes, 1)
}

func TestCastVoteRepoFailure(t *testing.T) {
	repo := &stubVoteRepo{err: assert.AnError}
	svc := NewVoteService(repo, &stubGuard{}, zerolog.Nop())

	err := svc.CastVote(context.Background(), ports.CastVoteInput{Voter: voter(), CandidateID: uuid.New()})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyVoted)
}
