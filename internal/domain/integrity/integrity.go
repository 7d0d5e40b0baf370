// Package integrity defines the contract for checking submission hashes.
//
// The scheme is a shared-secret concatenation digest, not a MAC: any client
// that can produce a valid hash necessarily embeds the token, so this is a
// tamper speed bump rather than an authentication boundary. The Validator
// interface exists so a stronger scheme can replace it without touching the
// ranking logic.
package integrity

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
)

// defaultToken is the literal secret baked into shipped clients. Changing it
// invalidates every client in the field.
const defaultToken = "TheTurtle"

// Validator checks a client-supplied integrity hash for a submission.
type Validator interface {
	// Validate returns ErrHashMismatch when hash does not match the
	// server-side recomputation for (name, score). The expected value is
	// never returned to callers.
	Validate(ctx context.Context, name string, score int, hash string) error
}

// SHA256Validator recomputes hex(sha256(name + token + score)) and compares
// it against the submitted hash.
type SHA256Validator struct {
	token string
}

// NewSHA256Validator creates a validator with the default shared token.
func NewSHA256Validator(opts ...Option) *SHA256Validator {
	v := &SHA256Validator{token: defaultToken}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate implements Validator.
func (v *SHA256Validator) Validate(_ context.Context, name string, score int, hash string) error {
	expected := Digest(name, score, v.token)
	// Constant-time compare; the exact match is case-sensitive on the
	// canonical lowercase hex encoding.
	if subtle.ConstantTimeCompare([]byte(expected), []byte(hash)) != 1 {
		return ErrHashMismatch
	}
	return nil
}

// Digest computes the canonical submission digest for (name, score) under
// token: lowercase hex SHA-256 of name, then token, then the score rendered
// as its decimal string. Exposed for clients that need to produce valid
// submissions (seed tooling, tests).
func Digest(name string, score int, token string) string {
	sum := sha256.Sum256([]byte(name + token + strconv.Itoa(score)))
	return hex.EncodeToString(sum[:])
}
