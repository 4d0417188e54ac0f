package api

import "errors"

// Sentinel kinds for API request errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrBadDimension = errors.New("unknown dimension, want overall, policy, or balance_sheet")
)
