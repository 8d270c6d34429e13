package entities

type ReservationEmailData struct {
	ReservationID      int
	MemberName         string
	Destination        string
	StartDateFormatted string
	EndDateFormatted   string
	Status             string
	CurrentYear        int
}
