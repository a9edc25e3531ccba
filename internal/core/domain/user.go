package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleVoter = "voter"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	VoterID      string    `json:"voter_id"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	HasVoted     bool      `json:"has_voted"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the sanitized view of a user carried by a session. It never
// contains credential material.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	VoterID  string    `json:"voter_id"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	HasVoted bool      `json:"has_voted"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		VoterID:  u.VoterID,
		FullName: u.FullName,
		Role:     u.Role,
		HasVoted: u.HasVoted,
	}
}
