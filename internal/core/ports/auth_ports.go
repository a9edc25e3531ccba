package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/election-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and, on success, returns the sanitized
	// identity together with a signed session token for it.
	Login(ctx context.Context, voterID, password string) (*domain.Identity, string, error)
	// Refresh re-reads the identity from the user store so a restored
	// client sees current state rather than the snapshot taken at login.
	Refresh(ctx context.Context, userID uuid.UUID) (*domain.Identity, error)
	// IssueSession serializes an identity into a signed session token.
	IssueSession(identity domain.Identity) (string, error)
	// ParseSession reconstructs the identity carried by a session token.
	ParseSession(token string) (*domain.Identity, error)
}
