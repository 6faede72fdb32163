package jobs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jobportal/job-portal-service/common/db"
	"github.com/jobportal/job-portal-service/common/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const jobColumns = "id, title, company, location, posting_date, job_type, tags, link"

// Store is the Postgres-backed job repository. Every public operation runs
// in its own transaction; validation failures abort before any write.
type Store struct {
	db *db.DB
}

// NewStore creates a job store on top of the shared DB handle.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

var _ Service = (*Store)(nil)

func scanJob(row pgx.Row) (models.Job, error) {
	var job models.Job
	err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location,
		&job.PostingDate, &job.JobType, &job.Tags, &job.Link)
	return job, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Create validates and persists a new job. The read-check gives a clean
// ErrDuplicateJob on the common path; the unique fingerprint index remains
// the authoritative guard against concurrent creates.
func (s *Store) Create(ctx context.Context, req models.CreateJobRequest) (models.Job, error) {
	title := strings.TrimSpace(req.Title)
	company := strings.TrimSpace(req.Company)
	location := NormalizeLocation(req.Locations, req.Location)

	if err := RequireNonEmpty(
		RequiredField{Name: "title", Value: title},
		RequiredField{Name: "company", Value: company},
		RequiredField{Name: "location", Value: location},
	); err != nil {
		return models.Job{}, err
	}

	tags := NormalizeTags(req.Tags)
	link := strings.TrimSpace(req.Link)

	jobType, err := ValidateJobType(req.JobType)
	if err != nil {
		return models.Job{}, err
	}

	postingDate := time.Now().UTC()
	if strings.TrimSpace(req.PostingDate) != "" {
		postingDate, err = ParseDate(req.PostingDate)
		if err != nil {
			return models.Job{}, err
		}
	}

	for _, check := range []struct {
		value string
		name  string
		max   int
	}{
		{title, "title", MaxTitleLen},
		{company, "company", MaxCompanyLen},
		{location, "location", MaxLocationLen},
		{tags, "tags", MaxTagsLen},
		{link, "link", MaxLinkLen},
	} {
		if err := CheckLength(check.value, check.name, check.max); err != nil {
			return models.Job{}, err
		}
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return models.Job{}, &StorageError{Op: "create job", Err: err}
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM jobs WHERE title = $1 AND company = $2 AND location = $3)`,
		title, company, location,
	).Scan(&exists)
	if err != nil {
		return models.Job{}, &StorageError{Op: "create job", Err: err}
	}
	if exists {
		return models.Job{}, ErrDuplicateJob
	}

	job, err := scanJob(tx.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, posting_date, job_type, tags, link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+jobColumns,
		title, company, location, postingDate, jobType, tags, link,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return models.Job{}, ErrDuplicateJob
		}
		return models.Job{}, &StorageError{Op: "create job", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Job{}, &StorageError{Op: "create job", Err: err}
	}
	return job, nil
}

// Get returns a single job by id.
func (s *Store) Get(ctx context.Context, id int64) (models.Job, error) {
	job, err := scanJob(s.db.Pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, ErrNotFound
		}
		return models.Job{}, &StorageError{Op: "get job", Err: err}
	}
	return job, nil
}

// List returns one page of jobs. Count and page read share a transaction so
// the totals match the rows. Ties are broken by id ascending to keep
// pagination stable across fetches.
func (s *Store) List(ctx context.Context, params ListParams) (models.JobPage, error) {
	p := params.normalized()

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return models.JobPage{}, &StorageError{Op: "list jobs", Err: err}
	}
	defer tx.Rollback(ctx)

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return models.JobPage{}, &StorageError{Op: "list jobs", Err: err}
	}

	direction := "DESC"
	if p.Order == "asc" {
		direction = "ASC"
	}
	offset := (p.Page - 1) * p.PerPage

	// p.SortBy has been whitelisted to a known column name by normalized().
	query := fmt.Sprintf(
		`SELECT `+jobColumns+` FROM jobs ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		p.SortBy, direction,
	)

	rows, err := tx.Query(ctx, query, p.PerPage, offset)
	if err != nil {
		return models.JobPage{}, &StorageError{Op: "list jobs", Err: err}
	}
	defer rows.Close()

	items := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return models.JobPage{}, &StorageError{Op: "list jobs", Err: err}
		}
		items = append(items, job)
	}
	if err := rows.Err(); err != nil {
		return models.JobPage{}, &StorageError{Op: "list jobs", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.JobPage{}, &StorageError{Op: "list jobs", Err: err}
	}

	return models.JobPage{
		Jobs:  items,
		Page:  p.Page,
		Pages: int(math.Ceil(float64(total) / float64(p.PerPage))),
		Total: total,
	}, nil
}

// Update applies a partial update. Each provided field is validated
// independently; absent fields stay untouched. The fingerprint index still
// applies, so an update that would collide surfaces as ErrDuplicateJob.
func (s *Store) Update(ctx context.Context, id int64, req models.UpdateJobRequest) (models.Job, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return models.Job{}, &StorageError{Op: "update job", Err: err}
	}
	defer tx.Rollback(ctx)

	job, err := scanJob(tx.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Job{}, ErrNotFound
		}
		return models.Job{}, &StorageError{Op: "update job", Err: err}
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
		if err := CheckLength(job.Title, "title", MaxTitleLen); err != nil {
			return models.Job{}, err
		}
	}
	if req.Company != nil {
		job.Company = strings.TrimSpace(*req.Company)
		if err := CheckLength(job.Company, "company", MaxCompanyLen); err != nil {
			return models.Job{}, err
		}
	}
	if req.Location != nil {
		job.Location = strings.TrimSpace(*req.Location)
		if err := CheckLength(job.Location, "location", MaxLocationLen); err != nil {
			return models.Job{}, err
		}
	}
	if req.PostingDate != nil {
		parsed, err := ParseDate(*req.PostingDate)
		if err != nil {
			return models.Job{}, err
		}
		job.PostingDate = parsed
	}
	if req.JobType != nil {
		jobType, err := ValidateJobType(*req.JobType)
		if err != nil {
			return models.Job{}, err
		}
		job.JobType = jobType
	}
	if req.Tags != nil {
		job.Tags = NormalizeTags(*req.Tags)
		if err := CheckLength(job.Tags, "tags", MaxTagsLen); err != nil {
			return models.Job{}, err
		}
	}
	if req.Link != nil {
		job.Link = strings.TrimSpace(*req.Link)
		if err := CheckLength(job.Link, "link", MaxLinkLen); err != nil {
			return models.Job{}, err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, company = $2, location = $3, posting_date = $4,
		     job_type = $5, tags = $6, link = $7
		 WHERE id = $8`,
		job.Title, job.Company, job.Location, job.PostingDate,
		job.JobType, job.Tags, job.Link, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Job{}, ErrDuplicateJob
		}
		return models.Job{}, &StorageError{Op: "update job", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Job{}, &StorageError{Op: "update job", Err: err}
	}
	return job, nil
}

// Delete removes a job. Deleting an already-deleted id reports ErrNotFound,
// not success.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return &StorageError{Op: "delete job", Err: err}
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return &StorageError{Op: "delete job", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return &StorageError{Op: "delete job", Err: err}
	}
	return nil
}
