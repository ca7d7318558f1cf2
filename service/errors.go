package services

import "errors"

// ErrInvalidRequest marks caller mistakes that map to a 400.
var ErrInvalidRequest = errors.New("invalid request")
