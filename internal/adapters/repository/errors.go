package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrConnect      = errors.New("store connect failed")
	ErrInvalidLimit = errors.New("invalid top-scores limit")
)
