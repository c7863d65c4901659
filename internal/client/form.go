// Package client implements the reservation form: field validation mirroring
// the rules enforced in the browser, and submission to the reserve endpoint
// with typed failures instead of error-message sniffing.
package client

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"samarlodge/internal/entities"
)

const dateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the guest's input before submission.
type Form struct {
	Name            string
	Email           string
	Phone           string
	CheckIn         string
	CheckOut        string
	Adults          int
	Children        int
	RoomType        string
	Rooms           int
	SpecialRequests string
}

// FieldError attaches a validation message to one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates the field errors of an invalid form. An invalid
// form never reaches the network.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid form"
	}
	return e.Fields[0].Error()
}

// Validate checks every rule and returns the errors in field order, so the
// first entry is the first offending field.
func (f Form) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	case !emailPattern.MatchString(f.Email):
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email"})
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone / WhatsApp is required"})
	}

	checkIn, checkInErr := parseDateField(f.CheckIn, "checkIn", "Check-in date is required", &errs)
	checkOut, checkOutErr := parseDateField(f.CheckOut, "checkOut", "Check-out date is required", &errs)
	if checkInErr == nil && checkOutErr == nil && !checkOut.After(checkIn) {
		errs = append(errs, FieldError{Field: "checkOut", Message: "Check-out must be after check-in"})
	}

	if f.Adults < 1 {
		errs = append(errs, FieldError{Field: "adults", Message: "At least 1 adult"})
	}
	if f.Children < 0 {
		errs = append(errs, FieldError{Field: "children", Message: "Children cannot be negative"})
	}
	if !entities.IsRoomType(f.RoomType) {
		errs = append(errs, FieldError{Field: "roomType", Message: "Choose a room type"})
	}
	if f.Rooms < 1 {
		errs = append(errs, FieldError{Field: "rooms", Message: "At least 1 room"})
	}

	return errs
}

func parseDateField(value, field, requiredMsg string, errs *[]FieldError) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		*errs = append(*errs, FieldError{Field: field, Message: requiredMsg})
		return time.Time{}, fmt.Errorf("missing")
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		*errs = append(*errs, FieldError{Field: field, Message: "Invalid date"})
		return time.Time{}, err
	}
	return t, nil
}
