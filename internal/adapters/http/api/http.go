// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gurtle/gurtle/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Scores lists the top entries for a duration selector, score ascending.
	Scores(ctx context.Context, duration string) ([]model.Entry, error)

	// Position computes the 1-indexed rank a score would hold.
	Position(ctx context.Context, duration string, score int) (model.Position, error)

	// Submit validates and stores a submitted entry.
	Submit(ctx context.Context, sub model.SubmittedEntry) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	scoresHandler   *ScoresHandler
	positionHandler *PositionHandler
	submitHandler   *SubmitHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		scoresHandler:   NewScoresHandler(deps),
		positionHandler: NewPositionHandler(deps),
		submitHandler:   NewSubmitHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", Instrument(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", Instrument(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/scores/", Instrument(s.scoresHandler.HandleGetScores, "scores"))
	mux.HandleFunc("/position/", Instrument(s.positionHandler.HandleGetPosition, "position"))
	mux.HandleFunc("/submitscore", Instrument(s.submitHandler.HandleSubmitScore, "submitscore"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeText emits the plain-text bodies the submission endpoint has always
// produced; clients match on them verbatim.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
