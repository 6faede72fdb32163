package messaging

import (
	"encoding/json"
	"time"

	"github.com/jobportal/job-portal-service/common/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Subjects for job lifecycle and ingestion events.
const (
	SubjectJobCreated    = "jobs.created"
	SubjectJobUpdated    = "jobs.updated"
	SubjectJobDeleted    = "jobs.deleted"
	SubjectScrapeRunDone = "scrape.run.completed"
)

// JobEvent is emitted after a successful job mutation.
type JobEvent struct {
	MessageID string     `json:"message_id"`
	JobID     int64      `json:"job_id"`
	Job       models.Job `json:"job,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// ScrapeRunEvent summarizes one completed ingestion run.
type ScrapeRunEvent struct {
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	CardsFound int       `json:"cards_found"`
	Posted     int       `json:"posted"`
	Skipped    int       `json:"skipped"`
	Dropped    int       `json:"dropped"`
	Timestamp  time.Time `json:"timestamp"`
}

// PublishJobEvent publishes a job lifecycle event. Failures are logged and
// swallowed; event delivery is best-effort and never fails the mutation.
func (b *NatsBroker) PublishJobEvent(subject string, job models.Job) {
	if b == nil {
		return
	}

	event := JobEvent{
		MessageID: uuid.NewString(),
		JobID:     job.ID,
		Job:       job,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to marshal job event")
		return
	}

	if err := b.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Int64("jobID", job.ID).Msg("Failed to publish job event")
	}
}

// PublishScrapeRunEvent publishes an ingestion run summary, best-effort.
func (b *NatsBroker) PublishScrapeRunEvent(event ScrapeRunEvent) {
	if b == nil {
		return
	}

	event.Timestamp = time.Now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal scrape run event")
		return
	}

	if err := b.Publish(SubjectScrapeRunDone, data); err != nil {
		log.Warn().Err(err).Str("runID", event.RunID).Msg("Failed to publish scrape run event")
	}
}
