package dto

import (
	"time"

	collection "lotus/internal/modules/collection/domain"
)

// Columns are the sortable fields of a saved entry.
var Columns = []collection.Column[SavedOutput]{
	{Key: "year", Label: "Year", Kind: collection.Numeric, Number: func(s SavedOutput) float64 { return float64(s.Year) }},
	{Key: "title", Label: "Title", Kind: collection.Textual, Text: func(s SavedOutput) string { return s.Title }},
	{Key: "authors", Label: "Authors", Kind: collection.Textual, Text: func(s SavedOutput) string { return s.Authors }},
	{Key: "journal", Label: "Journal", Kind: collection.Textual, Text: func(s SavedOutput) string { return s.Journal }},
	{Key: "savedAt", Label: "Saved", Kind: collection.Temporal, Time: func(s SavedOutput) time.Time { return s.SavedAt }},
}

// DefaultSort lists the most recently saved first.
var DefaultSort = collection.Sort{Key: "savedAt", Direction: collection.Desc}
