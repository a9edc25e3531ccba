package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type AuthService struct {
	userRepo   ports.UserRepository
	jwtSecret  []byte
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(userRepo ports.UserRepository, jwtSecret string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, voterID, password string) (*domain.Identity, string, error) {
	user, err := s.userRepo.GetByVoterID(ctx, voterID)
	if err != nil {
		s.logger.Error().Err(err).Msg("login lookup failed")
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	identity := user.Identity()
	token, err := s.IssueSession(identity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info().Str("voter_id", identity.VoterID).Str("role", identity.Role).Msg("login succeeded")
	return &identity, token, nil
}

func (s *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (*domain.Identity, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	identity := user.Identity()
	return &identity, nil
}

type sessionClaims struct {
	VoterID  string `json:"voter_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	HasVoted bool   `json:"has_voted"`
	jwt.RegisteredClaims
}

func (s *AuthService) IssueSession(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		VoterID:  identity.VoterID,
		FullName: identity.FullName,
		Role:     identity.Role,
		HasVoted: identity.HasVoted,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ParseSession(token string) (*domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in session token: %w", err)
	}

	return &domain.Identity{
		ID:       userID,
		VoterID:  claims.VoterID,
		FullName: claims.FullName,
		Role:     claims.Role,
		HasVoted: claims.HasVoted,
	}, nil
}
