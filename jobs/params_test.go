package jobs

import "testing"

func TestListParamsNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{
			name: "zero value gets defaults",
			in:   ListParams{},
			want: ListParams{Page: 1, PerPage: DefaultPerPage, SortBy: "posting_date", Order: "desc"},
		},
		{
			name: "negative page clamped",
			in:   ListParams{Page: -3, PerPage: 20},
			want: ListParams{Page: 1, PerPage: 20, SortBy: "posting_date", Order: "desc"},
		},
		{
			name: "per page capped",
			in:   ListParams{Page: 2, PerPage: 500},
			want: ListParams{Page: 2, PerPage: MaxPerPage, SortBy: "posting_date", Order: "desc"},
		},
		{
			name: "known sort column kept",
			in:   ListParams{Page: 1, PerPage: 10, SortBy: "company", Order: "asc"},
			want: ListParams{Page: 1, PerPage: 10, SortBy: "company", Order: "asc"},
		},
		{
			name: "underscored sort key resolves",
			in:   ListParams{Page: 1, PerPage: 10, SortBy: "posting_date", Order: "ASC"},
			want: ListParams{Page: 1, PerPage: 10, SortBy: "posting_date", Order: "asc"},
		},
		{
			name: "mixed case sort key",
			in:   ListParams{Page: 1, PerPage: 10, SortBy: "Job_Type"},
			want: ListParams{Page: 1, PerPage: 10, SortBy: "job_type", Order: "desc"},
		},
		{
			name: "unknown sort falls back",
			in:   ListParams{Page: 1, PerPage: 10, SortBy: "salary"},
			want: ListParams{Page: 1, PerPage: 10, SortBy: "posting_date", Order: "desc"},
		},
		{
			name: "misplaced underscores do not resolve to a column",
			in:   ListParams{Page: 1, PerPage: 10, SortBy: "t_itle", Order: "asc"},
			want: ListParams{Page: 1, PerPage: 10, SortBy: "posting_date", Order: "asc"},
		},
		{
			name: "injection attempt falls back",
			in:   ListParams{Page: 1, PerPage: 10, SortBy: "title; DROP TABLE jobs", Order: "desc; --"},
			want: ListParams{Page: 1, PerPage: 10, SortBy: "posting_date", Order: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.normalized(); got != tt.want {
				t.Errorf("normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
