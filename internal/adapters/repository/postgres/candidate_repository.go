package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetAll(ctx context.Context, order domain.CandidateOrder) ([]*domain.Candidate, error) {
	orderBy := "name ASC"
	if order == domain.OrderByVotes {
		orderBy = "vote_count DESC, name ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, name, party, description, vote_count, created_at
		FROM candidates
		ORDER BY %s
	`, orderBy)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.Description, &c.VoteCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, party, description, vote_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		candidate.ID, candidate.Name, candidate.Party, candidate.Description,
		candidate.VoteCount, candidate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}
