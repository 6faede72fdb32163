package scraper

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestScrollUntilStable(t *testing.T) {
	tests := []struct {
		name       string
		heights    []int
		maxScrolls int
		wantRounds int
	}{
		{
			name:       "stops when height stops growing",
			heights:    []int{100, 200, 300, 300},
			maxScrolls: 10,
			wantRounds: 3,
		},
		{
			name:       "single page needs one round",
			heights:    []int{100, 100},
			maxScrolls: 10,
			wantRounds: 1,
		},
		{
			name:       "bounded by max scrolls",
			heights:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			maxScrolls: 3,
			wantRounds: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := 0
			measure := func() (int, error) {
				h := tt.heights[i]
				if i < len(tt.heights)-1 {
					i++
				}
				return h, nil
			}
			scrolls := 0
			scroll := func() error {
				scrolls++
				return nil
			}

			rounds, err := scrollUntilStable(context.Background(), scroll, measure, time.Millisecond, tt.maxScrolls)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rounds != tt.wantRounds {
				t.Errorf("rounds = %d, want %d", rounds, tt.wantRounds)
			}
			if scrolls != tt.wantRounds {
				t.Errorf("scroll calls = %d, want %d", scrolls, tt.wantRounds)
			}
		})
	}
}

func TestScrollUntilStableMeasureError(t *testing.T) {
	boom := errors.New("page gone")
	measure := func() (int, error) { return 0, boom }
	scroll := func() error { return nil }

	_, err := scrollUntilStable(context.Background(), scroll, measure, time.Millisecond, 5)
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

func TestScrollUntilStableCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	measure := func() (int, error) { return 1, nil }
	scroll := func() error { return nil }

	_, err := scrollUntilStable(ctx, scroll, measure, time.Second, 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
