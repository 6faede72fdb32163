package jobs

import (
	"context"

	"github.com/jobportal/job-portal-service/common/models"
)

// Service defines the job operations handlers depend on.
type Service interface {
	// Create validates, normalizes and persists a new job. Returns
	// ErrDuplicateJob when the (title, company, location) fingerprint
	// already exists.
	Create(ctx context.Context, req models.CreateJobRequest) (models.Job, error)

	// Get returns the job with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (models.Job, error)

	// List returns one page of jobs with total counts.
	List(ctx context.Context, params ListParams) (models.JobPage, error)

	// Update applies a partial update, validating each provided field
	// independently. Returns ErrNotFound when the id does not exist.
	Update(ctx context.Context, id int64, req models.UpdateJobRequest) (models.Job, error)

	// Delete removes the job or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
