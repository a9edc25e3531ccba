package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
)

type voteService struct {
	voteRepo ports.VoteRepository
	guard    ports.VoteGuard
	logger   zerolog.Logger
}

func NewVoteService(voteRepo ports.VoteRepository, guard ports.VoteGuard, logger zerolog.Logger) ports.VoteService {
	return &voteService{
		voteRepo: voteRepo,
		guard:    guard,
		logger:   logger,
	}
}

func (s *voteService) CastVote(ctx context.Context, input ports.CastVoteInput) error {
	// The session snapshot refuses repeat votes without touching the
	// backend; the unique constraint on votes remains the authority.
	if input.Voter.HasVoted {
		return domain.ErrAlreadyVoted
	}

	if s.guard != nil {
		acquired, err := s.guard.Acquire(ctx, input.Voter.ID)
		if err != nil {
			// The guard is advisory; the database constraint still
			// holds if it is unavailable.
			s.logger.Warn().Err(err).Msg("vote guard unavailable")
		} else if !acquired {
			return domain.ErrVoteInProgress
		} else {
			defer func() {
				if err := s.guard.Release(ctx, input.Voter.ID); err != nil {
					s.logger.Warn().Err(err).Msg("failed to release vote guard")
				}
			}()
		}
	}

	vote := &domain.Vote{
		ID:          uuid.New(),
		UserID:      input.Voter.ID,
		CandidateID: input.CandidateID,
		VotedAt:     time.Now().UTC(),
	}

	err := s.voteRepo.RecordVote(ctx, vote)
	switch {
	case err == nil:
		s.logger.Info().
			Str("user_id", vote.UserID.String()).
			Str("candidate_id", vote.CandidateID.String()).
			Msg("vote recorded")
		return nil
	case errors.Is(err, domain.ErrAlreadyVoted):
		s.logger.Info().Str("user_id", vote.UserID.String()).Msg("duplicate vote rejected")
		return err
	case errors.Is(err, domain.ErrCandidateNotFound):
		return err
	default:
		s.logger.Error().Err(err).Str("user_id", vote.UserID.String()).Msg("failed to record vote")
		return fmt.Errorf("failed to record vote: %w", err)
	}
}
