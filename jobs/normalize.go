package jobs

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// NormalizeTags turns a tag list into the canonical comma-joined string:
// entries trimmed, lower-cased, empties dropped, order of first occurrence
// preserved. Duplicates are kept; the canonical form is a plain join.
func NormalizeTags(tags []string) string {
	normalized := lo.FilterMap(tags, func(t string, _ int) (string, bool) {
		t = strings.ToLower(strings.TrimSpace(t))
		return t, t != ""
	})
	return strings.Join(normalized, ",")
}

// NormalizeLocation derives the canonical location: the first entry of the
// locations list when one was supplied, otherwise the scalar fallback. An
// empty result means the caller must reject the record.
func NormalizeLocation(locations []string, fallback string) string {
	if len(locations) > 0 {
		return strings.TrimSpace(locations[0])
	}
	return strings.TrimSpace(fallback)
}

// Accepted posting date layouts, tried in order. RFC 3339 covers the
// Z-suffixed and offset forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 timestamp. Callers substitute "now" for an
// absent value on create; an unparsable value is always an error.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}
