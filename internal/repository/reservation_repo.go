package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"reservas/internal/db"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) ListReservations() ([]db.Reservation, error) {
	query := `
	SELECT id, member_name, destination, start_date, end_date, status, created_at, updated_at
	FROM reservations`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(
			&res.ID, &res.MemberName, &res.Destination,
			&res.StartDate, &res.EndDate, &res.Status,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation rows: %w", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) GetReservationByID(id int) (*db.Reservation, error) {
	var res db.Reservation
	query := `
	SELECT id, member_name, destination, start_date, end_date, status, created_at, updated_at
	FROM reservations WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&res.ID, &res.MemberName, &res.Destination,
		&res.StartDate, &res.EndDate, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reservation with id %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying reservation: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepository) CreateReservation(res *db.Reservation) error {
	query := `
		INSERT INTO reservations
		(member_name, destination, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		res.MemberName,
		res.Destination,
		res.StartDate,
		res.EndDate,
		res.Status,
		res.CreatedAt,
		res.UpdatedAt,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

// UpdateReservation overwrites every mutable field of the row. Returns
// sql.ErrNoRows when the id does not exist.
func (r *ReservationRepository) UpdateReservation(res *db.Reservation) error {
	query := `
		UPDATE reservations
		SET member_name = $1, destination = $2, start_date = $3, end_date = $4, status = $5, updated_at = NOW()
		WHERE id = $6`
	result, err := r.DB.Exec(query,
		res.MemberName, res.Destination, res.StartDate, res.EndDate, res.Status, res.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating reservation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteReservation removes the row. Returns sql.ErrNoRows when the id
// does not exist.
func (r *ReservationRepository) DeleteReservation(id int) error {
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reservation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
