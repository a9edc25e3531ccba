package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type statsService struct {
	repo   ports.StatsRepository
	logger zerolog.Logger
}

func NewStatsService(repo ports.StatsRepository, logger zerolog.Logger) ports.StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *statsService) ElectionStats(ctx context.Context) (*domain.ElectionStats, error) {
	stats, err := s.repo.ElectionStats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load election stats")
		return nil, fmt.Errorf("failed to load election stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) ReconcileTallies(ctx context.Context) error {
	if err := s.repo.ReconcileTallies(ctx); err != nil {
		return fmt.Errorf("failed to reconcile tallies: %w", err)
	}
	s.logger.Info().Msg("candidate tallies reconciled from vote rows")
	return nil
}
