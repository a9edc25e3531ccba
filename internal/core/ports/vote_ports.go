package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/openelect/election-api/internal/core/domain"
)

type VoteRepository interface {
	// RecordVote atomically inserts the vote row, increments the chosen
	// candidate's tally and marks the voter as having voted. It returns
	// domain.ErrAlreadyVoted when the one-vote-per-user constraint rejects
	// the insert and domain.ErrCandidateNotFound when the candidate row is
	// gone; in both cases nothing is written.
	RecordVote(ctx context.Context, vote *domain.Vote) error
}

// VoteGuard serializes vote submissions per user so that a double submit
// from the same session cannot race itself.
type VoteGuard interface {
	Acquire(ctx context.Context, userID uuid.UUID) (bool, error)
	Release(ctx context.Context, userID uuid.UUID) error
}

type CastVoteInput struct {
	Voter       domain.Identity
	CandidateID uuid.UUID
}

type VoteService interface {
	CastVote(ctx context.Context, input CastVoteInput) error
}
