package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

var (
	// ErrSubmitInFlight is returned while a previous submission is pending;
	// the form's submit control stays disabled for the duration.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrAlreadySubmitted is returned once a submission has succeeded; the
	// submitted state is terminal.
	ErrAlreadySubmitted = errors.New("reservation already submitted")
)

// NetworkError means the reservation service could not be reached at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "reservation service unreachable: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the service answered but rejected the request, either at the
// HTTP level or with an explicit success=false body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// payload is the exact wire shape of a submission: the ten reservation fields
// and nothing else.
type payload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	RoomType        string `json:"roomType"`
	Rooms           int    `json:"rooms"`
	SpecialRequests string `json:"specialRequests"`
}

// Client submits validated reservation forms to the reserve endpoint. One
// submission may be in flight at a time, and a successful submission is
// terminal.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu        sync.Mutex
	inFlight  bool
	submitted bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// Submitted reports whether a submission has already succeeded.
func (c *Client) Submitted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted
}

// Submit validates the form and posts it as JSON. It returns
// *ValidationError without touching the network when the form is invalid,
// *NetworkError when no server is reachable, and *APIError when the service
// rejects the request.
func (c *Client) Submit(ctx context.Context, form Form) error {
	c.mu.Lock()
	if c.submitted {
		c.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.inFlight = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	if errs := form.Validate(); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	body, err := json.Marshal(payload{
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		CheckIn:         form.CheckIn,
		CheckOut:        form.CheckOut,
		Adults:          form.Adults,
		Children:        form.Children,
		RoomType:        form.RoomType,
		Rooms:           form.Rooms,
		SpecialRequests: form.SpecialRequests,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/reserve", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	// Tolerate an empty or non-JSON body the way the form does.
	var status struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !status.Success {
		return &APIError{Status: resp.StatusCode, Message: status.Error}
	}

	c.mu.Lock()
	c.submitted = true
	c.mu.Unlock()
	return nil
}
