package domain

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Party       string    `json:"party"`
	Description string    `json:"description,omitempty"`
	VoteCount   int64     `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateOrder selects the ordering of a candidate listing.
type CandidateOrder string

const (
	// OrderByName sorts ascending by candidate name (voter view).
	OrderByName CandidateOrder = "name"
	// OrderByVotes sorts descending by tally (admin view).
	OrderByVotes CandidateOrder = "votes"
)
