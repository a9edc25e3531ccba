package ports

import (
	"context"

	"github.com/openelect/election-api/internal/core/domain"
)

type CandidateRepository interface {
	GetAll(ctx context.Context, order domain.CandidateOrder) ([]*domain.Candidate, error)
	Create(ctx context.Context, candidate *domain.Candidate) error
}

type CreateCandidateInput struct {
	Name        string
	Party       string
	Description string
}

type CandidateService interface {
	List(ctx context.Context, order domain.CandidateOrder) ([]*domain.Candidate, error)
	Create(ctx context.Context, input CreateCandidateInput) (*domain.Candidate, error)
}
