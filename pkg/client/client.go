// Package client is a thin typed wrapper over the reservation API. It is
// the programmatic equivalent of the web client's fetch layer: one call
// per operation, no retries, no shared state between calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the server answers 404 for an id.
var ErrNotFound = errors.New("reservation not found")

type Reservation struct {
	ID          int    `json:"id"`
	MemberName  string `json:"memberName"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

// ReservationInput is the create/update payload. Dates are ISO
// "YYYY-MM-DD" strings; an empty Status defaults to "pending" on create.
type ReservationInput struct {
	MemberName  string `json:"memberName"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) ListReservations(ctx context.Context) ([]Reservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/reservations", nil)
	if err != nil {
		return nil, err
	}
	var reservations []Reservation
	if err := c.do(req, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id int) (*Reservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reservationURL(id), nil)
	if err != nil {
		return nil, err
	}
	var reservation Reservation
	if err := c.do(req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) CreateReservation(ctx context.Context, input ReservationInput) (*Reservation, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/reservations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var reservation Reservation
	if err := c.do(req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) UpdateReservation(ctx context.Context, id int, input ReservationInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.reservationURL(id), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.reservationURL(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) reservationURL(id int) string {
	return fmt.Sprintf("%s/api/reservations/%d", c.BaseURL, id)
}

// do executes the request and decodes a JSON body into out when out is
// non-nil. Any transport error or non-2xx status comes back as an error;
// a 404 maps to ErrNotFound.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
