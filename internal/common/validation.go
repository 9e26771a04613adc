package common

import (
	"fmt"
	"regexp"
	"strings"
)

const MaxLoginLength = 15

var loginRegex = regexp.MustCompile(`^[0-9a-z]+$`)

// ValidateLogin accepts the same logins the URL patterns can address.
func ValidateLogin(login string) error {
	if login == "" || len(login) > MaxLoginLength {
		return fmt.Errorf("%w: login must be between 1 and %d characters", ErrValidation, MaxLoginLength)
	}
	if !loginRegex.MatchString(login) {
		return fmt.Errorf("%w: login can only contain lowercase letters and digits", ErrValidation)
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	if len(password) > 72 {
		return fmt.Errorf("%w: password is too long", ErrValidation)
	}
	return nil
}

func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}
