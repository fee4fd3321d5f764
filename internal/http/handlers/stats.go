package handlers

import (
	"net/http"

	"github.com/godswill-dev/guardian-be/internal/http/respond"
	"github.com/godswill-dev/guardian-be/internal/stats"
)

// StatsHandler reports the aggregate creation counters.
type StatsHandler struct {
	registry *stats.Registry
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(registry *stats.Registry) *StatsHandler {
	return &StatsHandler{registry: registry}
}

// Register attaches the stats route to the mux.
func (h *StatsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /stats", h.handle)
}

func (h *StatsHandler) handle(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, "aggregate counts", h.registry.SnapshotAll())
}
