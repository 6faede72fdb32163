package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/samber/lo"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Scraped payloads send comma-joined strings while
// interactive clients send arrays; both decode to the same slice so nothing
// downstream has to branch on the wire shape.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		parts := strings.Split(single, ",")
		*s = lo.FilterMap(parts, func(p string, _ int) (string, bool) {
			p = strings.TrimSpace(p)
			return p, p != ""
		})
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("must be a string or an array of strings")
	}
	*s = list
	return nil
}
