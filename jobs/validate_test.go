package jobs

import (
	"errors"
	"strings"
	"testing"
)

func TestRequireNonEmpty(t *testing.T) {
	tests := []struct {
		name        string
		fields      []RequiredField
		wantMissing []string
	}{
		{
			name:   "all present",
			fields: []RequiredField{{"title", "Actuary"}, {"company", "Acme"}},
		},
		{
			name:        "one missing",
			fields:      []RequiredField{{"title", ""}, {"company", "Acme"}},
			wantMissing: []string{"title"},
		},
		{
			name:        "reports every offender",
			fields:      []RequiredField{{"title", "  "}, {"company", ""}, {"location", ""}},
			wantMissing: []string{"title", "company", "location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireNonEmpty(tt.fields...)
			if len(tt.wantMissing) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var missing *MissingFieldsError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want *MissingFieldsError", err)
			}
			if len(missing.Fields) != len(tt.wantMissing) {
				t.Fatalf("missing fields = %v, want %v", missing.Fields, tt.wantMissing)
			}
			for i, name := range tt.wantMissing {
				if missing.Fields[i] != name {
					t.Errorf("missing[%d] = %q, want %q", i, missing.Fields[i], name)
				}
			}
		})
	}
}

func TestCheckLength(t *testing.T) {
	if err := CheckLength(strings.Repeat("a", MaxTitleLen), "title", MaxTitleLen); err != nil {
		t.Errorf("value at the limit rejected: %v", err)
	}

	err := CheckLength(strings.Repeat("a", MaxTitleLen+1), "title", MaxTitleLen)
	var tooLong *FieldTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("error = %v, want *FieldTooLongError", err)
	}
	if tooLong.Field != "title" || tooLong.Max != MaxTitleLen {
		t.Errorf("got field %q max %d, want title %d", tooLong.Field, tooLong.Max, MaxTitleLen)
	}
}

func TestCheckLengthCountsRunes(t *testing.T) {
	// 100 two-byte runes: 200 bytes, 100 characters, within a 120 limit.
	accented := strings.Repeat("é", 100)
	if err := CheckLength(accented, "title", MaxTitleLen); err != nil {
		t.Errorf("100-character multi-byte value rejected: %v", err)
	}

	if err := CheckLength(strings.Repeat("é", MaxTitleLen+1), "title", MaxTitleLen); err == nil {
		t.Error("121-character multi-byte value accepted")
	}
}

func TestValidateJobType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "empty is valid", in: "", want: ""},
		{name: "exact", in: "contract", want: "contract"},
		{name: "case folded", in: "Full-Time", want: "full-time"},
		{name: "remote", in: "REMOTE", want: "remote"},
		{name: "unknown", in: "freelance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateJobType(tt.in)
			if tt.wantErr {
				var invalid *InvalidJobTypeError
				if !errors.As(err, &invalid) {
					t.Fatalf("error = %v, want *InvalidJobTypeError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateJobType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeQueryParam(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"title", "title"},
		{"  title  ", "title"},
		{"posting_date", "postingdate"},
		{"title; DROP TABLE jobs", "title DROP TABLE jobs"},
		{`ti'tle--`, "title"},
		{`%_\'";--`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeQueryParam(tt.in); got != tt.want {
				t.Errorf("SanitizeQueryParam(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
