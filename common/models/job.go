package models

import (
	"time"
)

// Job is the persisted job posting entity. Title, company and location are
// stored in canonical (trimmed) form; their triple is unique.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	PostingDate time.Time `json:"posting_date"`
	JobType     string    `json:"job_type"`
	Tags        string    `json:"tags"`
	Link        string    `json:"link"`
}

// CreateJobRequest is the create payload. Location may arrive either as a
// scalar `location` or a `locations` list; the first list entry wins.
type CreateJobRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Locations   StringList `json:"locations"`
	PostingDate string     `json:"posting_date"`
	JobType     string     `json:"job_type"`
	Tags        StringList `json:"tags"`
	Link        string     `json:"link"`
}

// UpdateJobRequest carries a partial update. Nil fields are untouched.
type UpdateJobRequest struct {
	Title       *string     `json:"title"`
	Company     *string     `json:"company"`
	Location    *string     `json:"location"`
	PostingDate *string     `json:"posting_date"`
	JobType     *string     `json:"job_type"`
	Tags        *StringList `json:"tags"`
	Link        *string     `json:"link"`
}

// JobPage is one page of a job listing.
type JobPage struct {
	Jobs  []Job `json:"jobs"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Total int64 `json:"total"`
}
