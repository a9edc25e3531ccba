package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
	"github.com/openelect/election-api/internal/metrics"
)

type VoteHandler struct {
	service     ports.VoteService
	authService ports.AuthService
	cookies     CookieConfig
}

func NewVoteHandler(service ports.VoteService, authService ports.AuthService, cookies CookieConfig) *VoteHandler {
	return &VoteHandler{
		service:     service,
		authService: authService,
		cookies:     cookies,
	}
}

type castVoteRequest struct {
	CandidateID uuid.UUID `json:"candidate_id"`
}

// Cast godoc
// @Summary      Casts the session user's single vote
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      404
// @Failure      409
// @Router       /api/votes [post]
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CandidateID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	err := h.service.CastVote(r.Context(), ports.CastVoteInput{
		Voter:       identity,
		CandidateID: req.CandidateID,
	})
	switch {
	case err == nil:
		metrics.VotesCastTotal.WithLabelValues("success").Inc()
		h.refreshVotedSession(w, identity)
		writeJSON(w, http.StatusCreated, map[string]string{"status": "vote recorded"})
	case errors.Is(err, domain.ErrAlreadyVoted):
		// Benign outcome: the store already holds this user's vote, so the
		// session snapshot is brought up to date.
		metrics.VotesCastTotal.WithLabelValues("already_voted").Inc()
		h.refreshVotedSession(w, identity)
		writeError(w, http.StatusConflict, "already voted")
	case errors.Is(err, domain.ErrVoteInProgress):
		metrics.VotesCastTotal.WithLabelValues("in_progress").Inc()
		writeError(w, http.StatusTooManyRequests, "a vote is already being processed")
	case errors.Is(err, domain.ErrCandidateNotFound):
		metrics.VotesCastTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusNotFound, domain.ErrCandidateNotFound.Error())
	default:
		metrics.VotesCastTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "failed to cast vote, please try again")
	}
}

// refreshVotedSession reissues the session cookie with has_voted set, so the
// client's snapshot matches the store without a re-login.
func (h *VoteHandler) refreshVotedSession(w http.ResponseWriter, identity domain.Identity) {
	identity.HasVoted = true
	token, err := h.authService.IssueSession(identity)
	if err != nil {
		return
	}
	setSessionCookie(w, token, h.cookies)
}
