package db

import "time"

type Reservation struct {
	ID          int
	MemberName  string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AdminUser struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
