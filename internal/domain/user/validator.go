package user

import (
	"fmt"
	"regexp"
	"strings"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail canonicalizes an identifier so lookups and the unique
// constraint agree on case and whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignup(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func validateLogin(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}
	return nil
}
