package playlist

import "errors"

var ErrNotFound = errors.New("playlist not found")
