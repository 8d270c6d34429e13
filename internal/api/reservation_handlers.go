package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"reservas/internal/entities"
	apperrors "reservas/internal/errors"
)

const dateLayout = "2006-01-02"

type ReservationService interface {
	ListReservations() ([]entities.ReservationResponse, error)
	GetReservation(id int) (*entities.ReservationResponse, error)
	CreateReservation(req *entities.ReservationRequest) (*entities.ReservationResponse, error)
	UpdateReservation(id int, req *entities.ReservationRequest) error
	DeleteReservation(id int) error
}

type ReservationHandler struct {
	Service ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Service.ListReservations()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reservations)
}

func (h *ReservationHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	res, err := h.Service.GetReservation(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var payload ReservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req, err := toReservationRequest(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.Service.CreateReservation(req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprintf("/api/reservations/%d", res.ID))
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var payload ReservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req, err := toReservationRequest(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateReservation(id, req); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteReservation(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// toReservationRequest enforces the same required-field checks the client
// form does. Status passes through unvalidated; the service fills in the
// default when it is empty.
func toReservationRequest(payload ReservationPayload) (*entities.ReservationRequest, error) {
	if payload.MemberName == "" {
		return nil, errors.New("memberName is required")
	}
	if payload.Destination == "" {
		return nil, errors.New("destination is required")
	}
	startDate, err := time.Parse(dateLayout, payload.StartDate)
	if err != nil {
		return nil, errors.New("startDate must be a valid ISO date (YYYY-MM-DD)")
	}
	endDate, err := time.Parse(dateLayout, payload.EndDate)
	if err != nil {
		return nil, errors.New("endDate must be a valid ISO date (YYYY-MM-DD)")
	}
	return &entities.ReservationRequest{
		MemberName:  payload.MemberName,
		Destination: payload.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      payload.Status,
	}, nil
}

func writeError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, "Database error", http.StatusInternalServerError)
}
