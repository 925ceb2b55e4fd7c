package spotify

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenExpired indicates the bearer token was missing, invalid or
	// expired (HTTP 401).
	ErrTokenExpired = errors.New("token expired")

	// ErrPermissionDenied indicates the token lacks the required scope
	// (HTTP 403).
	ErrPermissionDenied = errors.New("permission denied")
)

// APIError represents any other non-2xx response from the catalog API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog API error: status %d", e.Status)
	}
	return fmt.Sprintf("catalog API error: status %d: %s", e.Status, e.Message)
}

// classifyStatus maps a non-2xx HTTP status to a typed error.
func classifyStatus(status int, message string) error {
	switch status {
	case 401:
		return ErrTokenExpired
	case 403:
		return ErrPermissionDenied
	default:
		return &APIError{Status: status, Message: message}
	}
}
