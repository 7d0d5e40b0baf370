// Package model contains domain models passed between layers.
package model

import "time"

// TimeLayout renders timestamps with fixed-width fractional seconds so that
// lexicographic comparison of stored datetime strings agrees with
// chronological order. Stored entries and window bounds must both use it.
const TimeLayout = "2006-01-02 15:04:05.000000000 UTC"

// Entry represents a persisted score record. Lower scores rank better.
type Entry struct {
	Name     string `json:"name" bson:"name"`
	Score    int    `json:"score" bson:"score"`
	Datetime string `json:"datetime" bson:"datetime"` // server-generated, TimeLayout
}

// SubmittedEntry is the wire shape for POST /submitscore. The hash is a
// client-computed integrity token checked before the entry is stored.
type SubmittedEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Hash  string `json:"hash"`
}

// Position is the derived 1-indexed rank of a score within a window.
type Position struct {
	Position int64 `json:"position"`
}

// FormatTime renders t in TimeLayout, normalized to UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
