package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservas/internal/entities"
	apperrors "reservas/internal/errors"
)

type fakeReservationService struct {
	listFn   func() ([]entities.ReservationResponse, error)
	getFn    func(id int) (*entities.ReservationResponse, error)
	createFn func(req *entities.ReservationRequest) (*entities.ReservationResponse, error)
	updateFn func(id int, req *entities.ReservationRequest) error
	deleteFn func(id int) error
}

func (f *fakeReservationService) ListReservations() ([]entities.ReservationResponse, error) {
	return f.listFn()
}

func (f *fakeReservationService) GetReservation(id int) (*entities.ReservationResponse, error) {
	return f.getFn(id)
}

func (f *fakeReservationService) CreateReservation(req *entities.ReservationRequest) (*entities.ReservationResponse, error) {
	return f.createFn(req)
}

func (f *fakeReservationService) UpdateReservation(id int, req *entities.ReservationRequest) error {
	return f.updateFn(id, req)
}

func (f *fakeReservationService) DeleteReservation(id int) error {
	return f.deleteFn(id)
}

func setupRouter(t *testing.T, svc *fakeReservationService) http.Handler {
	t.Helper()
	h := NewReservationHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/reservations", h.ListReservations).Methods("GET")
	r.HandleFunc("/api/reservations", h.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", h.UpdateReservation).Methods("PUT")
	r.HandleFunc("/api/reservations/{id}", h.DeleteReservation).Methods("DELETE")
	return r
}

func TestListReservations_Success(t *testing.T) {
	svc := &fakeReservationService{
		listFn: func() ([]entities.ReservationResponse, error) {
			return []entities.ReservationResponse{
				{ID: 1, MemberName: "Ana", Destination: "Lisbon", StartDate: "2026-03-01", EndDate: "2026-03-10", Status: "pending"},
				{ID: 2, MemberName: "Bruno", Destination: "Porto", StartDate: "2026-04-01", EndDate: "2026-04-05", Status: "confirmed"},
			}, nil
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []entities.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Ana", resp[0].MemberName)
	assert.Equal(t, "confirmed", resp[1].Status)
}

func TestListReservations_Empty(t *testing.T) {
	svc := &fakeReservationService{
		listFn: func() ([]entities.ReservationResponse, error) {
			return []entities.ReservationResponse{}, nil
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListReservations_StorageError(t *testing.T) {
	svc := &fakeReservationService{
		listFn: func() ([]entities.ReservationResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetReservation_Success(t *testing.T) {
	svc := &fakeReservationService{
		getFn: func(id int) (*entities.ReservationResponse, error) {
			require.Equal(t, 42, id)
			return &entities.ReservationResponse{ID: 42, MemberName: "Ana", Destination: "Lisbon", StartDate: "2026-03-01", EndDate: "2026-03-10", Status: "pending"}, nil
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations/42", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entities.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.ID)
	assert.Equal(t, "Lisbon", resp.Destination)
}

func TestGetReservation_NotFound(t *testing.T) {
	svc := &fakeReservationService{
		getFn: func(id int) (*entities.ReservationResponse, error) {
			return nil, apperrors.ErrNotFound("Reservation not found")
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReservation_InvalidID(t *testing.T) {
	r := setupRouter(t, &fakeReservationService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservation_Success(t *testing.T) {
	var captured *entities.ReservationRequest
	svc := &fakeReservationService{
		createFn: func(req *entities.ReservationRequest) (*entities.ReservationResponse, error) {
			captured = req
			return &entities.ReservationResponse{
				ID:          7,
				MemberName:  req.MemberName,
				Destination: req.Destination,
				StartDate:   req.StartDate.Format("2006-01-02"),
				EndDate:     req.EndDate.Format("2006-01-02"),
				Status:      "pending",
			}, nil
		},
	}
	r := setupRouter(t, svc)

	body := []byte(`{"memberName":"Ana","destination":"Lisbon","startDate":"2026-03-01","endDate":"2026-03-10"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/reservations/7", w.Header().Get("Location"))

	var resp entities.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, captured)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), captured.StartDate)
	assert.Empty(t, captured.Status)
}

func TestCreateReservation_MissingRequiredField(t *testing.T) {
	called := false
	svc := &fakeReservationService{
		createFn: func(req *entities.ReservationRequest) (*entities.ReservationResponse, error) {
			called = true
			return nil, nil
		},
	}
	r := setupRouter(t, svc)

	body := []byte(`{"destination":"Lisbon","startDate":"2026-03-01","endDate":"2026-03-10"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestCreateReservation_InvalidDate(t *testing.T) {
	r := setupRouter(t, &fakeReservationService{})

	body := []byte(`{"memberName":"Ana","destination":"Lisbon","startDate":"March 1st","endDate":"2026-03-10"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservation_MalformedBody(t *testing.T) {
	r := setupRouter(t, &fakeReservationService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader([]byte(`{not json`))))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReservation_Success(t *testing.T) {
	var capturedID int
	var captured *entities.ReservationRequest
	svc := &fakeReservationService{
		updateFn: func(id int, req *entities.ReservationRequest) error {
			capturedID = id
			captured = req
			return nil
		},
	}
	r := setupRouter(t, svc)

	body := []byte(`{"memberName":"Ana","destination":"Madeira","startDate":"2026-03-02","endDate":"2026-03-12","status":"confirmed"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/reservations/5", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, 5, capturedID)
	require.NotNil(t, captured)
	assert.Equal(t, "Madeira", captured.Destination)
	assert.Equal(t, "confirmed", captured.Status)
}

func TestUpdateReservation_NotFound(t *testing.T) {
	svc := &fakeReservationService{
		updateFn: func(id int, req *entities.ReservationRequest) error {
			return apperrors.ErrNotFound("Reservation not found")
		},
	}
	r := setupRouter(t, svc)

	body := []byte(`{"memberName":"Ana","destination":"Madeira","startDate":"2026-03-02","endDate":"2026-03-12","status":"confirmed"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/reservations/99", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReservation_Success(t *testing.T) {
	svc := &fakeReservationService{
		deleteFn: func(id int) error {
			require.Equal(t, 5, id)
			return nil
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/reservations/5", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteReservation_NotFound(t *testing.T) {
	svc := &fakeReservationService{
		deleteFn: func(id int) error {
			return apperrors.ErrNotFound("Reservation not found")
		},
	}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/reservations/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
