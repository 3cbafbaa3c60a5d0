package http

import (
	"net/http"

	"libtrack-backend/internal/service"
)

// DashboardHandler serves the read-model aggregates.
type DashboardHandler struct {
	dashboard service.DashboardService
}

func NewDashboardHandler(dashboard service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.dashboard.RecentActivity(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": entries})
}

func (h *DashboardHandler) PopularBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.dashboard.PopularBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"books": books})
}
