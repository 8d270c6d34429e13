package service

import (
	"fmt"
	"log"
)

const statusCancelled = "cancelled"

type JobStore interface {
	GetPendingReservationIDsPastEndDate() ([]int, error)
	UpdateReservationStatuses(ids []int, newStatus string) error
}

type JobService struct {
	Repo JobStore
}

func NewJobService(repo JobStore) *JobService {
	return &JobService{Repo: repo}
}

// CancelStalePendingReservations flips pending reservations whose end date
// has passed to "cancelled". Returns the number of affected reservations.
func (s *JobService) CancelStalePendingReservations() (int, error) {
	log.Println("Cron Job: Checking for stale pending reservations...")

	reservationIDs, err := s.Repo.GetPendingReservationIDsPastEndDate()
	if err != nil {
		return 0, fmt.Errorf("cron job: failed to get pending reservations past end date: %w", err)
	}

	if len(reservationIDs) == 0 {
		log.Println("Cron Job: No pending reservations found past their end date.")
		return 0, nil
	}

	log.Printf("Cron Job: Found %d reservations to cancel. IDs: %v", len(reservationIDs), reservationIDs)

	err = s.Repo.UpdateReservationStatuses(reservationIDs, statusCancelled)
	if err != nil {
		return 0, fmt.Errorf("cron job: failed to update reservation statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully cancelled %d stale reservations.", len(reservationIDs))
	return len(reservationIDs), nil
}
