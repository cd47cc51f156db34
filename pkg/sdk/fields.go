package sdk

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)
	emailRE    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// eventTimeLayouts are the accepted input formats for event times.
var eventTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}

// ParseEventTime parses a user-supplied event time, accepting RFC3339 and the
// local date-time shorthand.
func ParseEventTime(value string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a recognized time (use e.g. 2006-01-02 15:04)", ErrValidation, value)
}

// ValidateID checks that an id argument parses as a UUID before it is ever
// sent to the backend. The label names the field in the error.
func ValidateID(label, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, label)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s %q is not a valid id", ErrValidation, label, id)
	}
	return nil
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) error {
	if !emailRE.MatchString(email) {
		return fmt.Errorf("%w: %q is not a valid email address", ErrValidation, email)
	}
	return nil
}

// ValidateRegistration checks the registration form before any request.
func ValidateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email and password are all required", ErrValidation)
	}
	if !usernameRE.MatchString(username) {
		return fmt.Errorf("%w: username must be 3-32 characters of letters, digits, dots, dashes or underscores", ErrValidation)
	}
	return ValidateEmail(email)
}

// ValidateProfile checks a profile update payload.
func ValidateProfile(username, email string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if !usernameRE.MatchString(username) {
		return fmt.Errorf("%w: username must be 3-32 characters of letters, digits, dots, dashes or underscores", ErrValidation)
	}
	return ValidateEmail(email)
}

// ValidateEventInput checks an event payload. The time-range rule is enforced
// here so a bad range never costs a network round trip.
func ValidateEventInput(input CreateEventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: event title is required", ErrValidation)
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrValidation)
	}
	if !input.EndTime.After(input.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrValidation)
	}
	for _, email := range input.InvitedUserEmails {
		if err := ValidateEmail(email); err != nil {
			return fmt.Errorf("%w: invited address %q is not a valid email", ErrValidation, email)
		}
	}
	return nil
}
