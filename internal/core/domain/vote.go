package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	VotedAt     time.Time `json:"voted_at"`
}
