package api

import (
	"log"
	"net/http"

	"github.com/atlasproject/atlas-api/internal/stats"
)

// StatsHandler handles statistics requests
type StatsHandler struct {
	collector *stats.Collector
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(collector *stats.Collector) *StatsHandler {
	return &StatsHandler{collector: collector}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.collector.Collect(r.Context())
	if err != nil {
		log.Printf("Error collecting stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to collect stats"})
		return
	}
	writeJSON(w, http.StatusOK, s)
}
