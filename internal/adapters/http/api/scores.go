// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gurtle/gurtle/internal/domain/model"
)

// ScoresDependencies defines the interface for top-scores queries.
type ScoresDependencies interface {
	Scores(ctx context.Context, duration string) ([]model.Entry, error)
}

// ScoresHandler handles ranked listing requests.
type ScoresHandler struct {
	deps ScoresDependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps ScoresDependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// HandleGetScores handles GET /scores/{duration} requests. Any duration
// outside {weekly, monthly} lists the whole collection.
func (h *ScoresHandler) HandleGetScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	duration := strings.TrimPrefix(r.URL.Path, "/scores/")
	if duration == "" || strings.Contains(duration, "/") {
		writeText(w, http.StatusBadRequest, ErrBadRequest.Error())
		return
	}
	entries, err := h.deps.Scores(r.Context(), duration)
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
