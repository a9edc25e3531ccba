package http

import (
	"net/http"

	"github.com/openelect/election-api/internal/core/ports"
)

type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// Stats godoc
// @Summary      Turnout and tally summary (admin only)
// @Tags         admin
// @Success      200
// @Failure      403
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.ElectionStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
