package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

// RecordVote runs the whole cast inside one transaction: the vote insert, the
// tally increment and the has_voted flag either all commit or none do. The
// increment happens in SQL, so two concurrent casts for the same candidate
// cannot lose an update.
func (r *voteRepository) RecordVote(ctx context.Context, vote *domain.Vote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertVote := `
		INSERT INTO votes (id, user_id, candidate_id, voted_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, insertVote, vote.ID, vote.UserID, vote.CandidateID, vote.VotedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	incrementTally := `
		UPDATE candidates SET vote_count = vote_count + 1 WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, incrementTally, vote.CandidateID)
	if err != nil {
		return fmt.Errorf("failed to increment tally: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrCandidateNotFound
	}

	markVoted := `
		UPDATE users SET has_voted = TRUE WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, markVoted, vote.UserID); err != nil {
		return fmt.Errorf("failed to mark voter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
