package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Study is one result row returned by the backend.
type Study struct {
	Year    int    `json:"year"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Journal string `json:"journal"`
}

// UnmarshalJSON accepts a year given as a number or a numeric string; any
// other year becomes 0. Missing or null text fields become "".
func (s *Study) UnmarshalJSON(raw []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	*s = FromFields(fields)
	return nil
}

// FromFields builds a Study from a loosely typed record.
func FromFields(fields map[string]any) Study {
	return Study{
		Year:    asYear(fields["year"]),
		Title:   asString(fields["title"]),
		Authors: asString(fields["authors"]),
		Journal: asString(fields["journal"]),
	}
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

func asYear(v any) int {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		return x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
