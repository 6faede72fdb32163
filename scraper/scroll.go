package scraper

import (
	"context"
	"time"
)

// scrollUntilStable repeatedly invokes scroll and then measure until two
// consecutive measurements return the same value, waiting delay between
// rounds so lazily loaded content has a chance to render. maxScrolls bounds
// the number of rounds; a value <= 0 means unbounded. It returns the number
// of scroll rounds performed.
func scrollUntilStable(ctx context.Context, scroll func() error, measure func() (int, error), delay time.Duration, maxScrolls int) (int, error) {
	last, err := measure()
	if err != nil {
		return 0, err
	}

	rounds := 0
	for maxScrolls <= 0 || rounds < maxScrolls {
		if err := scroll(); err != nil {
			return rounds, err
		}
		rounds++

		select {
		case <-ctx.Done():
			return rounds, ctx.Err()
		case <-time.After(delay):
		}

		height, err := measure()
		if err != nil {
			return rounds, err
		}
		if height == last {
			break
		}
		last = height
	}

	return rounds, nil
}
