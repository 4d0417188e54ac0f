package repository

import "errors"

// Sentinel kinds for stance history errors.
var (
	ErrNoHistory   = errors.New("no stance history for participant")
	ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")
)
