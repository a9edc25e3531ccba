package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) ports.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) ElectionStats(ctx context.Context) (*domain.ElectionStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM candidates),
			(SELECT COUNT(*) FROM votes),
			(SELECT COUNT(*) FROM users WHERE role = 'voter'),
			(SELECT COUNT(*) FROM users WHERE role = 'voter' AND has_voted)
	`
	stats := &domain.ElectionStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalCandidates,
		&stats.TotalVotes,
		&stats.TotalVoters,
		&stats.VotedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load election stats: %w", err)
	}
	return stats, nil
}

func (r *statsRepository) ReconcileTallies(ctx context.Context) error {
	query := `
		UPDATE candidates c
		SET vote_count = (
			SELECT COUNT(*) FROM votes v WHERE v.candidate_id = c.id
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to reconcile tallies: %w", err)
	}
	return nil
}
