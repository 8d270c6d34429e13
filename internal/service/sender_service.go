package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"reservas/internal/entities"
)

var reservationEmailTmpl = template.Must(template.New("reservationEmail").Parse(`
<html>
<body>
  <p>Reservation #{{.ReservationID}} was {{.Status}}.</p>
  <ul>
    <li>Member: {{.MemberName}}</li>
    <li>Destination: {{.Destination}}</li>
    <li>Start: {{.StartDateFormatted}}</li>
    <li>End: {{.EndDateFormatted}}</li>
  </ul>
  <p>ReservaTracker &copy; {{.CurrentYear}}</p>
</body>
</html>`))

// SenderService composes reservation notifications and pushes them to the
// configured back-office email/phone.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendReservationEmail(reservation entities.ReservationResponse, event string) {
	notifyEmail := os.Getenv("RESERVATIONS_NOTIFY_EMAIL")
	if notifyEmail == "" {
		log.Println("WARNING: RESERVATIONS_NOTIFY_EMAIL not set. Reservation email will not be sent.")
		return
	}

	emailData := entities.ReservationEmailData{
		ReservationID:      reservation.ID,
		MemberName:         reservation.MemberName,
		Destination:        reservation.Destination,
		StartDateFormatted: formatEmailDate(reservation.StartDate),
		EndDateFormatted:   formatEmailDate(reservation.EndDate),
		Status:             event,
		CurrentYear:        time.Now().UTC().Year(),
	}

	emailSubject := fmt.Sprintf("Reservation #%d %s - %s", emailData.ReservationID, event, emailData.Destination)
	plainTextBody := fmt.Sprintf(
		"Reservation #%d was %s.\n\n"+
			"Member: %s\n"+
			"Destination: %s\n"+
			"Start: %s\n"+
			"End: %s\n",
		emailData.ReservationID, event, emailData.MemberName, emailData.Destination,
		emailData.StartDateFormatted, emailData.EndDateFormatted,
	)

	var htmlBody bytes.Buffer
	if err := reservationEmailTmpl.Execute(&htmlBody, emailData); err != nil {
		log.Printf("Error rendering reservation email template: %v", err)
		htmlBody.Reset()
		htmlBody.WriteString(plainTextBody)
	}

	if err := SendEmailWithSendGrid(notifyEmail, "Reservations", emailSubject, plainTextBody, htmlBody.String()); err != nil {
		log.Printf("ALERT (async): email for reservation %d failed: %v", reservation.ID, err)
	}

	if notifyPhone := os.Getenv("RESERVATIONS_NOTIFY_PHONE"); notifyPhone != "" {
		smsBody := fmt.Sprintf("Reservation #%d (%s, %s) %s", reservation.ID, reservation.MemberName, reservation.Destination, event)
		if err := SendSMS(notifyPhone, smsBody); err != nil {
			log.Printf("ALERT (async): SMS for reservation %d failed: %v", reservation.ID, err)
		}
	}
}

func formatEmailDate(isoDate string) string {
	t, err := time.Parse(dateLayout, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02 Jan 2006")
}
