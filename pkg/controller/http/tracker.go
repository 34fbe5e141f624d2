package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
	"github.com/secmon-lab/pregtrack/pkg/usecase"
)

// TrackerHandler serves the status card data
type TrackerHandler struct {
	tracker usecase.TrackerUseCase
}

// NewTrackerHandler creates a new TrackerHandler
func NewTrackerHandler(tracker usecase.TrackerUseCase) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

// HandleStatus returns the latest snapshot
func (h *TrackerHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tracker.Snapshot(r.Context())
	writeJSON(w, r, http.StatusOK, snapshot.View())
}

// HandleWeek returns size comparison, milestones and image of a week.
// Weeks without catalog data get fallback text, not an error.
func (h *TrackerHandler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	week, err := types.ParseWeek(chi.URLParam(r, "week"))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	content := h.tracker.Content(week)
	writeJSON(w, r, http.StatusOK, content.View())
}
