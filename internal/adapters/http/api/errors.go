package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// Fixed response bodies; shipped clients match on these strings.
const (
	msgScoreAdded   = "Score added"
	msgInvalidHash  = "Score rejected: Invalid hash"
	msgMalformedReq = "Malformed request body"
)
