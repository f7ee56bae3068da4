// Package contact accepts contact form submissions and keeps them in sqlite.
// Delivery by email is out of scope; submissions are only stored.
package contact

import (
	"errors"
	"regexp"
	"time"
	"unicode/utf8"
)

// Field limits, in characters
const (
	MaxNameLength    = 100
	MinMessageLength = 10
	MaxMessageLength = 1000
)

var (
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidMessage = errors.New("invalid message")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Request is the submitted form
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate checks fields in form order and returns the first failure
func (r Request) Validate() error {
	if r.Name == "" || utf8.RuneCountInString(r.Name) > MaxNameLength {
		return ErrInvalidName
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	if n := utf8.RuneCountInString(r.Message); n < MinMessageLength || n > MaxMessageLength {
		return ErrInvalidMessage
	}
	return nil
}

// Submission is a stored, validated request
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
