package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScrapeRun is the bookkeeping record for one ingestion run.
type ScrapeRun struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time
	CardsFound int
	Posted     int
	Skipped    int
	Dropped    int
}

// StartScrapeRun records the start of an ingestion run and returns its id.
func (s *Store) StartScrapeRun(ctx context.Context, source string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO scrape_runs (id, source, started_at) VALUES ($1, $2, $3)`,
		id, source, time.Now().UTC(),
	)
	if err != nil {
		return "", &StorageError{Op: "start scrape run", Err: err}
	}
	return id, nil
}

// FinishScrapeRun stores the final counters for a run.
func (s *Store) FinishScrapeRun(ctx context.Context, run ScrapeRun) error {
	_, err := s.db.Pool.Exec(ctx,
		`UPDATE scrape_runs
		 SET finished_at = $1, cards_found = $2, posted = $3, skipped = $4, dropped = $5
		 WHERE id = $6`,
		time.Now().UTC(), run.CardsFound, run.Posted, run.Skipped, run.Dropped, run.ID,
	)
	if err != nil {
		return &StorageError{Op: "finish scrape run", Err: err}
	}
	return nil
}
