package jobs

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// AllowedJobTypes is the fixed set of acceptable job_type values.
var AllowedJobTypes = []string{"full-time", "part-time", "contract", "internship", "temporary", "remote"}

// Field length limits, mirrored by the storage schema.
const (
	MaxTitleLen    = 120
	MaxCompanyLen  = 120
	MaxLocationLen = 120
	MaxTagsLen     = 255
	MaxLinkLen     = 255
)

// RequiredField pairs a field name with its (already normalized) value.
type RequiredField struct {
	Name  string
	Value string
}

// RequireNonEmpty checks all fields and reports every offender in a single
// MissingFieldsError rather than failing on the first.
func RequireNonEmpty(fields ...RequiredField) error {
	missing := lo.FilterMap(fields, func(f RequiredField, _ int) (string, bool) {
		return f.Name, strings.TrimSpace(f.Value) == ""
	})
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// CheckLength fails when value exceeds max characters. Limits count runes,
// not bytes, matching the VARCHAR column lengths.
func CheckLength(value, name string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &FieldTooLongError{Field: name, Max: max}
	}
	return nil
}

// ValidateJobType case-folds the value and checks it against the allowed
// set. An empty value is valid; the field is optional.
func ValidateJobType(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	lowered := strings.ToLower(value)
	if !lo.Contains(AllowedJobTypes, lowered) {
		return "", &InvalidJobTypeError{Value: value}
	}
	return lowered, nil
}

// Stripped from sort/filter query parameters. Parameterized queries already
// guard the data path; this is defense in depth for values interpolated
// into ORDER BY after whitelisting.
var queryParamSanitizer = strings.NewReplacer(
	"--", "",
	"%", "",
	"_", "",
	`\`, "",
	"'", "",
	`"`, "",
	";", "",
)

// SanitizeQueryParam strips denylisted characters from a query parameter.
// Returns "" when nothing survives.
func SanitizeQueryParam(value string) string {
	return queryParamSanitizer.Replace(strings.TrimSpace(value))
}
