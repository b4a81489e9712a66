package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"user-records-api/internal/domain/user"
)

// ParseUserID parses a path id. Ids are plain integers.
func ParseUserID(s string) (user.ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("user id must be an integer")
	}
	return user.ID(id), nil
}

// ValidateUser checks a candidate record against the static field
// constraints and the configured minimum age. It runs every check and
// returns all violations in a fixed field order, or nil when the
// record may be admitted. Invoked on create and full replace only.
func ValidateUser(u user.User, minAgeYears int) []string {
	var reasons []string
	today := Today()

	// email (required + format)
	if u.Email == "" {
		reasons = append(reasons, "Email is required")
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		reasons = append(reasons, "Invalid email format")
	}

	// names (required)
	if u.FirstName == "" {
		reasons = append(reasons, "FirstName is required")
	}
	if u.LastName == "" {
		reasons = append(reasons, "LastName is required")
	}

	// birth date (required + strictly past)
	if u.BirthDate.IsZero() {
		reasons = append(reasons, "BirthDate is required")
	} else if !u.BirthDate.Before(today) {
		reasons = append(reasons, "BirthDate must be earlier than current date")
	}

	// age: an absent birth date satisfies this check on its own, only
	// the required-field check above reports it
	if !u.BirthDate.IsZero() && !u.BirthDate.AddDate(minAgeYears, 0, 0).Before(today) {
		reasons = append(reasons, fmt.Sprintf("User must be at least %d years old", minAgeYears))
	}

	return reasons
}

// Today returns the current calendar date at midnight UTC. Birth date
// comparisons use date granularity only.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
