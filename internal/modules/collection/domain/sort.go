// Package domain orders and windows record sequences for tabular views.
package domain

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind selects the comparison rule for a column.
type Kind int

const (
	Textual Kind = iota
	Numeric
	Temporal
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Arrow renders the direction as a header marker.
func (d Direction) Arrow() string {
	if d == Asc {
		return "▲"
	}
	return "▼"
}

// Column describes one sortable field of T. Only the accessor matching Kind is
// consulted; a nil accessor reads as the missing value (0, the Unix epoch or "").
type Column[T any] struct {
	Key    string
	Label  string
	Kind   Kind
	Number func(T) float64
	Time   func(T) time.Time
	Text   func(T) string
}

// Sort is the current ordering of a view.
type Sort struct {
	Key       string
	Direction Direction
}

var epoch = time.Unix(0, 0).UTC()

// SortedBy returns a new slice ordered by column. Equal elements keep their
// relative order in both directions.
func SortedBy[T any](records []T, column Column[T], dir Direction) []T {
	out := slices.Clone(records)
	compare := comparator(column)
	sign := 1
	if dir == Desc {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return sign * compare(a, b)
	})
	return out
}

func comparator[T any](column Column[T]) func(a, b T) int {
	switch column.Kind {
	case Numeric:
		get := column.Number
		if get == nil {
			get = func(T) float64 { return 0 }
		}
		return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
	case Temporal:
		get := column.Time
		if get == nil {
			get = func(T) time.Time { return time.Time{} }
		}
		return func(a, b T) int { return instant(get(a)).Compare(instant(get(b))) }
	default:
		get := column.Text
		if get == nil {
			get = func(T) string { return "" }
		}
		coll := collate.New(language.English, collate.IgnoreCase)
		return func(a, b T) int { return coll.CompareString(get(a), get(b)) }
	}
}

func instant(t time.Time) time.Time {
	if t.IsZero() {
		return epoch
	}
	return t
}

// ToggleSort applies a header click: the same key flips direction, another
// key starts ascending.
func ToggleSort(current Sort, clickedKey string) Sort {
	if clickedKey == current.Key {
		return Sort{Key: current.Key, Direction: current.Direction.Flip()}
	}
	return Sort{Key: clickedKey, Direction: Asc}
}

// Lookup finds the column with key.
func Lookup[T any](columns []Column[T], key string) (Column[T], bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

// NextKey cycles through column keys after current, wrapping around.
func NextKey[T any](columns []Column[T], current string) string {
	if len(columns) == 0 {
		return current
	}
	for i, c := range columns {
		if c.Key == current {
			return columns[(i+1)%len(columns)].Key
		}
	}
	return columns[0].Key
}
