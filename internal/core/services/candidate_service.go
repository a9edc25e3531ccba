package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type candidateService struct {
	repo   ports.CandidateRepository
	logger zerolog.Logger
}

func NewCandidateService(repo ports.CandidateRepository, logger zerolog.Logger) ports.CandidateService {
	return &candidateService{
		repo:   repo,
		logger: logger,
	}
}

func (s *candidateService) List(ctx context.Context, order domain.CandidateOrder) ([]*domain.Candidate, error) {
	if order != domain.OrderByVotes {
		order = domain.OrderByName
	}

	candidates, err := s.repo.GetAll(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("order", string(order)).Msg("failed to list candidates")
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (s *candidateService) Create(ctx context.Context, input ports.CreateCandidateInput) (*domain.Candidate, error) {
	name := strings.TrimSpace(input.Name)
	party := strings.TrimSpace(input.Party)
	if name == "" || party == "" {
		return nil, domain.ErrInvalidCandidate
	}

	candidate := &domain.Candidate{
		ID:          uuid.New(),
		Name:        name,
		Party:       party,
		Description: strings.TrimSpace(input.Description),
		VoteCount:   0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, candidate); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create candidate")
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	s.logger.Info().Str("candidate_id", candidate.ID.String()).Str("name", name).Msg("candidate created")
	return candidate, nil
}
