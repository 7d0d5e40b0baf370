package seeder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gurtle/gurtle/internal/domain/model"
	"github.com/gurtle/gurtle/pkg/logger"
)

// Result summarizes a seeding run.
type Result struct {
	Submitted int
	Accepted  int
	Rejected  int
	Failed    int
}

// Run generates submissions, posts them concurrently, then reads the
// leaderboard back to confirm the service answers ranked queries.
func Run(ctx context.Context, cfg *Config) (*Result, error) {
	if cfg.Count < 1 {
		cfg.Count = DefaultCount
	}
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	log := logger.Named("seeder")
	client := &http.Client{Timeout: cfg.Timeout}
	subs := generate(cfg.Count, cfg.Token)

	var accepted, rejected, failed atomic.Int64
	jobs := make(chan model.SubmittedEntry)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range jobs {
				status, body, err := post(ctx, client, cfg.BaseURL+"/submitscore", sub)
				switch {
				case err != nil:
					failed.Add(1)
					log.Warn(ctx, "submission failed", logger.Error(err))
				case status == http.StatusOK:
					accepted.Add(1)
				case status == http.StatusForbidden:
					rejected.Add(1)
				default:
					failed.Add(1)
					log.Warn(ctx, "unexpected status",
						logger.Int("status", status),
						logger.String("body", body),
					)
				}
				if cfg.Verbose {
					log.Info(ctx, "submitted",
						logger.String("name", sub.Name),
						logger.Int("score", sub.Score),
						logger.Int("status", status),
					)
				}
			}
		}()
	}

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- sub:
		}
	}
	close(jobs)
	wg.Wait()

	res := &Result{
		Submitted: cfg.Count,
		Accepted:  int(accepted.Load()),
		Rejected:  int(rejected.Load()),
		Failed:    int(failed.Load()),
	}

	if err := verify(ctx, client, cfg.BaseURL, log); err != nil {
		return res, err
	}

	log.Info(ctx, "seeding complete",
		logger.Int("submitted", res.Submitted),
		logger.Int("accepted", res.Accepted),
		logger.Int("rejected", res.Rejected),
		logger.Int("failed", res.Failed),
	)
	return res, nil
}

func post(ctx context.Context, client *http.Client, url string, sub model.SubmittedEntry) (int, string, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return 0, "", fmt.Errorf("marshal submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("post submission: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, string(body), nil
}

// verify fetches the all-time top list and a position for its best score.
func verify(ctx context.Context, client *http.Client, baseURL string, log logger.Logger) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/scores/alltime", nil)
	if err != nil {
		return fmt.Errorf("build scores request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch scores: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch scores: unexpected status %d", resp.StatusCode)
	}

	var entries []model.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return fmt.Errorf("decode scores: %w", err)
	}
	log.Info(ctx, "top list fetched", logger.Int("entries", len(entries)))
	if len(entries) == 0 {
		return nil
	}

	posURL := fmt.Sprintf("%s/position/alltime/%d", baseURL, entries[0].Score)
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, posURL, nil)
	if err != nil {
		return fmt.Errorf("build position request: %w", err)
	}
	posResp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch position: %w", err)
	}
	defer func() { _ = posResp.Body.Close() }()

	var pos model.Position
	if err := json.NewDecoder(posResp.Body).Decode(&pos); err != nil {
		return fmt.Errorf("decode position: %w", err)
	}
	log.Info(ctx, "position fetched",
		logger.Int("score", entries[0].Score),
		logger.Int64("position", pos.Position),
	)
	return nil
}
