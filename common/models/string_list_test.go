package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    StringList
		wantErr bool
	}{
		{name: "array", in: `["London","Remote"]`, want: StringList{"London", "Remote"}},
		{name: "comma joined string", in: `"London, Remote"`, want: StringList{"London", "Remote"}},
		{name: "single string", in: `"London"`, want: StringList{"London"}},
		{name: "empty string", in: `""`, want: StringList{}},
		{name: "stray commas", in: `"London,, ,Remote"`, want: StringList{"London", "Remote"}},
		{name: "number rejected", in: `42`, wantErr: true},
		{name: "object rejected", in: `{"a":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
