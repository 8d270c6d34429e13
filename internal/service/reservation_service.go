package service

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"reservas/internal/db"
	"reservas/internal/entities"
	apperrors "reservas/internal/errors"
)

const (
	statusPending = "pending"

	dateLayout = "2006-01-02"
)

type ReservationStore interface {
	ListReservations() ([]db.Reservation, error)
	GetReservationByID(id int) (*db.Reservation, error)
	CreateReservation(res *db.Reservation) error
	UpdateReservation(res *db.Reservation) error
	DeleteReservation(id int) error
}

type ReservationNotifier interface {
	SendReservationEmail(reservation entities.ReservationResponse, event string)
}

type ReservationService struct {
	Repo   ReservationStore
	Sender ReservationNotifier
}

func NewReservationService(repo ReservationStore, sender ReservationNotifier) *ReservationService {
	return &ReservationService{Repo: repo, Sender: sender}
}

func (s *ReservationService) ListReservations() ([]entities.ReservationResponse, error) {
	reservations, err := s.Repo.ListReservations()
	if err != nil {
		log.Printf("Error listing reservations: %v", err)
		return nil, err
	}
	resp := make([]entities.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		resp = append(resp, toReservationResponse(res))
	}
	return resp, nil
}

func (s *ReservationService) GetReservation(id int) (*entities.ReservationResponse, error) {
	res, err := s.Repo.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound("Reservation not found")
		}
		return nil, err
	}
	resp := toReservationResponse(*res)
	return &resp, nil
}

// CreateReservation stores the payload as-is. An omitted status defaults to
// "pending"; anything else passes through unvalidated.
func (s *ReservationService) CreateReservation(req *entities.ReservationRequest) (*entities.ReservationResponse, error) {
	status := req.Status
	if status == "" {
		status = statusPending
	}

	now := time.Now().UTC()
	reservation := &db.Reservation{
		MemberName:  req.MemberName,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.CreateReservation(reservation); err != nil {
		log.Printf("Error creating reservation in repository: %v", err)
		return nil, err
	}

	resp := toReservationResponse(*reservation)
	if s.Sender != nil {
		go s.Sender.SendReservationEmail(resp, "created")
	}
	return &resp, nil
}

// UpdateReservation overwrites every field of the stored row with the payload.
func (s *ReservationService) UpdateReservation(id int, req *entities.ReservationRequest) error {
	reservation := &db.Reservation{
		ID:          id,
		MemberName:  req.MemberName,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	}
	err := s.Repo.UpdateReservation(reservation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound("Reservation not found")
		}
		log.Printf("Error updating reservation %d: %v", id, err)
		return err
	}
	return nil
}

func (s *ReservationService) DeleteReservation(id int) error {
	res, err := s.Repo.GetReservationByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound("Reservation not found")
		}
		return err
	}

	if err := s.Repo.DeleteReservation(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound("Reservation not found")
		}
		log.Printf("Error deleting reservation %d: %v", id, err)
		return err
	}

	if s.Sender != nil {
		go s.Sender.SendReservationEmail(toReservationResponse(*res), "deleted")
	}
	return nil
}

func toReservationResponse(res db.Reservation) entities.ReservationResponse {
	return entities.ReservationResponse{
		ID:          res.ID,
		MemberName:  res.MemberName,
		Destination: res.Destination,
		StartDate:   res.StartDate.Format(dateLayout),
		EndDate:     res.EndDate.Format(dateLayout),
		Status:      res.Status,
	}
}
