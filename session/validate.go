package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmailInvalid is an exported constant or variable used by the API client.
	ErrEmailInvalid = errors.New("invalid email address")
	// ErrPasswordTooShort is an exported constant or variable used by the API client.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	// ErrFieldRequired is an exported constant or variable used by the API client.
	ErrFieldRequired = errors.New("required field is empty")
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks the address shape. Deliverability is the backend's
// problem.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePassword enforces the minimum length the backend also enforces.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateRequired rejects empty or whitespace-only values.
func ValidateRequired(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrFieldRequired, name)
	}
	return nil
}

func validateCredentials(creds Credentials) error {
	if err := ValidateEmail(creds.Email); err != nil {
		return err
	}
	return ValidatePassword(creds.Password)
}

func validateRegistration(reg Registration) error {
	if err := ValidateEmail(reg.Email); err != nil {
		return err
	}
	if err := ValidateRequired("name", reg.Name); err != nil {
		return err
	}
	return ValidatePassword(reg.Password)
}
