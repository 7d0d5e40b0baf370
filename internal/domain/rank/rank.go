// Package rank maps duration selectors to time-window bounds for ranked
// queries.
package rank

import (
	"time"

	"github.com/gurtle/gurtle/internal/domain/model"
)

// Recognized duration selectors. Anything else falls back to all-time.
const (
	DurationWeekly  = "weekly"
	DurationMonthly = "monthly"
	DurationAllTime = "alltime"
)

// Window lengths. A month is four weeks here, matching the stored data the
// service has always been queried against.
const (
	weeklySpan  = 7 * 24 * time.Hour
	monthlySpan = 28 * 24 * time.Hour
)

// Window bounds a ranked query in time. An empty Since matches every stored
// entry regardless of timestamp.
type Window struct {
	Since string
}

// Unbounded reports whether the window carries no lower time bound.
func (w Window) Unbounded() bool {
	return w.Since == ""
}

// WindowFor computes the query window for a duration selector relative to
// now. Unrecognized selectors, including the literal "alltime", produce an
// unbounded window rather than an empty one.
func WindowFor(duration string, now time.Time) Window {
	switch duration {
	case DurationWeekly:
		return Window{Since: model.FormatTime(now.Add(-weeklySpan))}
	case DurationMonthly:
		return Window{Since: model.FormatTime(now.Add(-monthlySpan))}
	default:
		return Window{}
	}
}
