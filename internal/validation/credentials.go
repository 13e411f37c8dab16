// Package validation checks registration input against the account policies.
package validation

import (
	"errors"
	"regexp"
	"unicode"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
)

var (
	// starts with a letter, then 7-14 letters, digits or underscores
	usernameRe = regexp.MustCompile(`^[A-Za-z]\w{7,14}$`)
	emailRe    = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")
)

const (
	passwordMinLen = 8
	passwordMaxLen = 15
)

// Username validates a username.
func Username(username string) error {
	if !usernameRe.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// Email validates the shape of an email address.
func Email(email string) error {
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// Password enforces the strongest policy: 8-15 characters with at least one
// digit, one lowercase, one uppercase and one non-alphanumeric character, and
// no whitespace.
func Password(password string) error {
	runes := []rune(password)
	if len(runes) < passwordMinLen || len(runes) > passwordMaxLen {
		return ErrInvalidPassword
	}

	var digit, lower, upper, special bool
	for _, r := range runes {
		switch {
		case unicode.IsSpace(r):
			return ErrInvalidPassword
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		default:
			special = true
		}
	}

	if !digit || !lower || !upper || !special {
		return ErrInvalidPassword
	}
	return nil
}
