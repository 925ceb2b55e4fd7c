package server

import (
	"errors"

	"github.com/mixtape-labs/mixtape/internal/spotify"
)

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrMissingQuery  = errors.New("missing search query")
	ErrAuthDisabled  = errors.New("authentication is not configured")
	ErrEmptyPlaylist = errors.New("playlist has no tracks")
)

// catalogErrorStatus maps a classified catalog error to the HTTP status this
// API surfaces for it. Upstream failures that are not the caller's fault
// come back as 502.
func catalogErrorStatus(err error) int {
	switch {
	case errors.Is(err, spotify.ErrTokenExpired):
		return 401
	case errors.Is(err, spotify.ErrPermissionDenied):
		return 403
	default:
		return 502
	}
}
