package integrity

import "errors"

// Sentinel kinds for integrity errors.
var (
	ErrHashMismatch = errors.New("submission hash mismatch")
)
