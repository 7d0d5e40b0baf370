// Package seeder posts generated score submissions against a running
// service and verifies the ranked reads afterwards.
package seeder

import "time"

// Default seeding configuration constants.
const (
	DefaultCount   = 100
	DefaultWorkers = 4
	DefaultTimeout = 10 * time.Second
)

// Config controls a seeding run.
type Config struct {
	// BaseURL of the target service, e.g. http://localhost:3000.
	BaseURL string

	// Count is the number of submissions to generate.
	Count int

	// Workers is the number of concurrent submitters.
	Workers int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Token is the shared secret used to compute submission hashes. Must
	// match the service's token or everything gets rejected.
	Token string

	// Verbose enables per-submission logging.
	Verbose bool
}
