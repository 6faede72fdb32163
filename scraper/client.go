package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrRetryExhausted is returned when a posting could not be submitted after
// every attempt failed.
var ErrRetryExhausted = errors.New("all submission attempts failed")

// Client submits scraped postings to the jobs API, retrying transient
// failures a fixed number of times with a delay between attempts.
type Client struct {
	apiURL   string
	http     *http.Client
	attempts int
	delay    time.Duration
}

func NewClient(apiURL string, attempts int, delay time.Duration) *Client {
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		apiURL:   apiURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		attempts: attempts,
		delay:    delay,
	}
}

// PostJob submits a single payload. A 201 response counts as success and
// any other status or transport error is retried. Duplicate and validation
// rejections also exhaust the retries; the caller only needs to know the
// posting did not land.
func (c *Client) PostJob(ctx context.Context, payload jobPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.delay):
			}
		}

		lastErr = c.post(ctx, body)
		if lastErr == nil {
			log.Info().Str("title", payload.Title).Msg("Posting saved")
			return nil
		}

		log.Warn().
			Err(lastErr).
			Str("title", payload.Title).
			Int("attempt", attempt).
			Msg("Posting submission failed")
	}

	return fmt.Errorf("%w: %s", ErrRetryExhausted, lastErr)
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
}
