// Package repository defines the score store interface and its
// implementations.
package repository

import (
	"context"

	"github.com/gurtle/gurtle/internal/domain/model"
)

// Store provides access to persisted score entries. The collection is
// append-only: entries are never updated or deleted, and duplicates are
// allowed. An empty since string means no lower time bound.
type Store interface {
	// TopScores returns up to limit entries with datetime >= since,
	// ordered ascending by score.
	TopScores(ctx context.Context, since string, limit int) ([]model.Entry, error)

	// CountAtLeast counts entries with score >= score and datetime >= since.
	CountAtLeast(ctx context.Context, score int, since string) (int64, error)

	// Insert appends an entry. The caller is responsible for stamping
	// Datetime before insertion.
	Insert(ctx context.Context, e model.Entry) error
}
