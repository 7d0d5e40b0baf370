// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gurtle/gurtle/internal/domain/model"
)

// PositionDependencies defines the interface for rank-position queries.
type PositionDependencies interface {
	Position(ctx context.Context, duration string, score int) (model.Position, error)
}

// PositionHandler handles rank-position requests.
type PositionHandler struct {
	deps PositionDependencies
}

// NewPositionHandler creates a new position handler.
func NewPositionHandler(deps PositionDependencies) *PositionHandler {
	return &PositionHandler{deps: deps}
}

// HandleGetPosition handles GET /position/{duration}/{score} requests.
func (h *PositionHandler) HandleGetPosition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/position/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeText(w, http.StatusBadRequest, ErrBadRequest.Error())
		return
	}
	score, err := strconv.Atoi(parts[1])
	if err != nil {
		writeText(w, http.StatusBadRequest, ErrBadRequest.Error())
		return
	}
	pos, err := h.deps.Position(r.Context(), parts[0], score)
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pos)
}
