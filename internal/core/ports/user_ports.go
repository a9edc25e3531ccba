package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/election-api/internal/core/domain"
)

type UserRepository interface {
	GetByVoterID(ctx context.Context, voterID string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
