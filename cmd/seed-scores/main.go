package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gurtle/gurtle/internal/seeder"
	"github.com/gurtle/gurtle/pkg/logger"
)

const runTimeout = 5 * time.Minute

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:3000", "Base URL of the service")
		count   = flag.Int("count", seeder.DefaultCount, "Number of submissions to generate")
		workers = flag.Int("workers", seeder.DefaultWorkers, "Number of concurrent submitters")
		timeout = flag.Duration("timeout", seeder.DefaultTimeout, "HTTP request timeout")
		token   = flag.String("token", "TheTurtle", "Shared secret for submission hashes")
		verbose = flag.Bool("verbose", false, "Log every submission")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg := &seeder.Config{
		BaseURL: *baseURL,
		Count:   *count,
		Workers: *workers,
		Timeout: *timeout,
		Token:   *token,
		Verbose: *verbose,
	}

	if _, err := seeder.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
