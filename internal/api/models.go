package api

// Reservation payload as it travels over the wire. Dates are ISO
// "2006-01-02" strings; status is free-form and defaults to "pending"
// server-side when omitted.
type ReservationPayload struct {
	MemberName  string `json:"memberName"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

// Admin auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
