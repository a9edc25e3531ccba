package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
	"github.com/openelect/election-api/internal/metrics"
)

type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		service: service,
	}
}

// List returns all candidates. `?order=votes` sorts by descending tally
// (admin results view); the default is ascending by name (ballot view).
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	order := domain.CandidateOrder(r.URL.Query().Get("order"))

	candidates, err := h.service.List(r.Context(), order)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load candidates")
		return
	}
	if candidates == nil {
		candidates = []*domain.Candidate{}
	}
	writeJSON(w, http.StatusOK, candidates)
}

type createCandidateRequest struct {
	Name        string `json:"name" validate:"required"`
	Party       string `json:"party" validate:"required"`
	Description string `json:"description"`
}

// Create godoc
// @Summary      Adds a candidate (admin only)
// @Tags         admin
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      403
// @Router       /api/admin/candidates [post]
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	candidate, err := h.service.Create(r.Context(), ports.CreateCandidateInput{
		Name:        req.Name,
		Party:       req.Party,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCandidate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add candidate")
		return
	}

	metrics.CandidatesCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, candidate)
}
