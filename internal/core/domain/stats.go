package domain

// ElectionStats is the admin turnout summary. Vote totals are computed from a
// live count over vote rows, not from the denormalized candidate tallies.
type ElectionStats struct {
	TotalCandidates int64 `json:"total_candidates"`
	TotalVotes      int64 `json:"total_votes"`
	TotalVoters     int64 `json:"total_voters"`
	VotedCount      int64 `json:"voted_count"`
}
