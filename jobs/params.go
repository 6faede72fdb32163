package jobs

import (
	"strings"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100

	defaultSortColumn = "posting_date"
	defaultOrder      = "desc"
)

// Sort keys must match a column name exactly (after lower-casing); anything
// else, mangled or hostile, falls back to the default.
var sortColumns = map[string]string{
	"id":           "id",
	"title":        "title",
	"company":      "company",
	"location":     "location",
	"posting_date": "posting_date",
	"job_type":     "job_type",
	"tags":         "tags",
	"link":         "link",
}

// ListParams carries raw pagination and sorting input from the query string.
type ListParams struct {
	Page    int
	PerPage int
	SortBy  string
	Order   string
}

// normalized clamps pagination, whitelists the sort column and defaults the
// order. An unknown sort field silently falls back to posting_date so a bad
// query still returns a stable listing.
func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}

	key := strings.ToLower(strings.TrimSpace(p.SortBy))
	if column, ok := sortColumns[key]; ok {
		p.SortBy = column
	} else {
		p.SortBy = defaultSortColumn
	}

	switch SanitizeQueryParam(strings.ToLower(p.Order)) {
	case "asc":
		p.Order = "asc"
	case "desc":
		p.Order = "desc"
	default:
		p.Order = defaultOrder
	}

	return p
}
