package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUsernameTaken is returned by registration when the username is in use.
var ErrUsernameTaken = errors.New("username already exists")

// ErrInvalidToken is returned when a bearer token cannot be resolved to a user.
var ErrInvalidToken = errors.New("invalid token")

// NotFoundError is returned when a record does not exist or is owned by
// another musician. The two cases are indistinguishable on purpose.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s matching query does not exist", e.Resource)
}

// ValidationError reports every offending field of a request payload at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed on fields: " + strings.Join(e.Fields, ", ")
}

const dateLayout = "2006-01-02"

// parseDate parses the wire format for dates (YYYY-MM-DD).
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
