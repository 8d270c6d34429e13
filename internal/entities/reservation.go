package entities

import "time"

type ReservationRequest struct {
	MemberName  string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Status      string // empty on create means "pending"
}

type ReservationResponse struct {
	ID          int    `json:"id"`
	MemberName  string `json:"memberName"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}
