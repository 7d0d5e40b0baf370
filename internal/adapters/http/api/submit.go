// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gurtle/gurtle/internal/domain/integrity"
	"github.com/gurtle/gurtle/internal/domain/model"
)

// SubmitDependencies defines the interface for score submission.
type SubmitDependencies interface {
	Submit(ctx context.Context, sub model.SubmittedEntry) error
}

// SubmitHandler handles score submissions.
type SubmitHandler struct {
	deps SubmitDependencies
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps SubmitDependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// HandleSubmitScore handles POST /submitscore requests. Hash mismatches get
// a 403 with a fixed message and never reveal the expected digest; store
// failures surface the underlying error text with a 500.
func (h *SubmitHandler) HandleSubmitScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var sub model.SubmittedEntry
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeText(w, http.StatusBadRequest, msgMalformedReq)
		return
	}
	if err := h.deps.Submit(r.Context(), sub); err != nil {
		if errors.Is(err, integrity.ErrHashMismatch) {
			writeText(w, http.StatusForbidden, msgInvalidHash)
			return
		}
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeText(w, http.StatusOK, msgScoreAdded)
}
