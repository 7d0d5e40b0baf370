// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"time"

	"github.com/gurtle/gurtle/internal/adapters/repository"
	"github.com/gurtle/gurtle/internal/domain/integrity"
	"github.com/gurtle/gurtle/internal/domain/model"
	"github.com/gurtle/gurtle/internal/domain/rank"
	"github.com/gurtle/gurtle/pkg/logger"
	"github.com/gurtle/gurtle/pkg/metrics"
)

// defaultTopLimit caps ranked listings at the fixed top ten.
const defaultTopLimit = 10

// Service composes the score store, the integrity validator and the ranking
// windows. It holds no per-request state: every operation opens a fresh query
// against the store, so instances are safe for concurrent use.
type Service struct {
	store     repository.Store
	validator integrity.Validator
	logger    logger.Logger
	topLimit  int
	now       func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing score store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithValidator sets the submission integrity validator.
func WithValidator(v integrity.Validator) Option {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTopLimit overrides the ranked-listing cap.
func WithTopLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// WithClock overrides the time source, used by tests to pin windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service. Without options it runs against an in-memory
// store with the default validator.
func New(opts ...Option) *Service {
	s := &Service{
		store:     repository.NewMemoryStore(),
		validator: integrity.NewSHA256Validator(),
		topLimit:  defaultTopLimit,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scores returns the top entries for the duration selector, ascending by
// score, at most the configured limit. An empty window yields an empty
// sequence, never an error.
func (s *Service) Scores(ctx context.Context, duration string) ([]model.Entry, error) {
	w := rank.WindowFor(duration, s.now())
	entries, err := s.store.TopScores(ctx, w.Since, s.topLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// Position returns the 1-indexed rank a score would hold within the
// duration's window: one plus the number of stored entries with a score at
// least as large.
func (s *Service) Position(ctx context.Context, duration string, score int) (model.Position, error) {
	w := rank.WindowFor(duration, s.now())
	n, err := s.store.CountAtLeast(ctx, score, w.Since)
	if err != nil {
		return model.Position{}, err
	}
	return model.Position{Position: n + 1}, nil
}

// Submit validates a submitted entry and, on success, stores it stamped with
// the current server time. Returns integrity.ErrHashMismatch when the hash
// does not check out; nothing is stored in that case. Duplicate submissions
// insert duplicate entries on purpose.
func (s *Service) Submit(ctx context.Context, sub model.SubmittedEntry) error {
	if err := s.validator.Validate(ctx, sub.Name, sub.Score, sub.Hash); err != nil {
		metrics.RecordSubmissionRejected()
		if s.logger != nil {
			s.logger.Warn(ctx, "submission rejected", logger.String("name", sub.Name))
		}
		return err
	}

	entry := model.Entry{
		Name:     sub.Name,
		Score:    sub.Score,
		Datetime: model.FormatTime(s.now()),
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		return err
	}

	metrics.RecordSubmissionAccepted()
	if s.logger != nil {
		s.logger.Info(ctx, "score stored",
			logger.String("name", entry.Name),
			logger.Int("score", entry.Score),
		)
	}
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"topLimit": s.topLimit,
	}
	if counter, ok := s.store.(interface {
		Count(ctx context.Context) (int64, error)
	}); ok {
		if n, err := counter.Count(context.Background()); err == nil {
			stats["entriesTotal"] = n
			metrics.UpdateEntriesTotal(n)
		}
	}
	return stats
}
