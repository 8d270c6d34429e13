package api

import (
	"encoding/json"
	"net/http"
)

type StaleReservationCanceller interface {
	CancelStalePendingReservations() (int, error)
}

type AdminJobHandler struct {
	Jobs StaleReservationCanceller
}

func NewAdminJobHandler(jobs StaleReservationCanceller) *AdminJobHandler {
	return &AdminJobHandler{Jobs: jobs}
}

// CancelStaleReservations runs the stale-pending maintenance job on demand.
func (h *AdminJobHandler) CancelStaleReservations(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.Jobs.CancelStalePendingReservations()
	if err != nil {
		http.Error(w, "Could not cancel stale reservations", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":   "Stale pending reservations cancelled",
		"cancelled": cancelled,
	})
}
