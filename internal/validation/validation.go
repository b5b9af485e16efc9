// Package validation checks request inputs before they reach the services.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	regionRegex = regexp.MustCompile(`^[a-z0-9\-]{1,32}$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidateDate checks a game date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if date == "" {
		return ValidationError{Field: "date", Message: "date is required"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	return nil
}

// ValidateRegionID checks a region identifier. Region ids are lowercase
// short slugs; anything else is rejected before a catalog lookup happens.
func ValidateRegionID(region string) error {
	if region == "" {
		return ValidationError{Field: "region", Message: "region is required"}
	}
	if !regionRegex.MatchString(region) {
		return ValidationError{Field: "region", Message: "invalid region id"}
	}
	return nil
}

// ValidateBirdID checks a guessed bird identifier is plausibly shaped.
func ValidateBirdID(birdID string) error {
	if strings.TrimSpace(birdID) == "" {
		return ValidationError{Field: "birdId", Message: "birdId is required"}
	}
	if len(birdID) > 128 {
		return ValidationError{Field: "birdId", Message: "birdId too long"}
	}
	return nil
}
