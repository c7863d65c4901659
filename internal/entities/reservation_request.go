package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ReservationRequest is the guest-submitted booking inquiry. The numeric fields
// are pointers so an absent value stays distinguishable from a literal zero when
// the emails are rendered.
type ReservationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Adults          *int   `json:"adults"`
	Children        *int   `json:"children"`
	RoomType        string `json:"roomType"`
	Rooms           *int   `json:"rooms"`
	SpecialRequests string `json:"specialRequests"`
}

// DecodeReservationBody extracts a ReservationRequest from a raw request body.
// The body may be a JSON object or a JSON-encoded string containing one; only
// the named fields are picked up, anything else in the payload is ignored.
func DecodeReservationBody(body []byte) (ReservationRequest, error) {
	var req ReservationRequest

	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return req, nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return req, fmt.Errorf("invalid request body: %w", err)
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return req, nil
		}
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}
