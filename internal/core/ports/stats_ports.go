package ports

import (
	"context"

	"github.com/openelect/election-api/internal/core/domain"
)

type StatsRepository interface {
	ElectionStats(ctx context.Context) (*domain.ElectionStats, error)
	// ReconcileTallies rewrites every candidate's vote_count from a live
	// count over vote rows.
	ReconcileTallies(ctx context.Context) error
}

type StatsService interface {
	ElectionStats(ctx context.Context) (*domain.ElectionStats, error)
	ReconcileTallies(ctx context.Context) error
}
