package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid voter id or password")
	ErrAlreadyVoted       = errors.New("user has already voted")
	ErrVoteInProgress     = errors.New("a vote for this user is already in progress")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrInvalidCandidate   = errors.New("candidate name and party are required")
	ErrUserNotFound       = errors.New("user not found")
)
