package dto

import collection "lotus/internal/modules/collection/domain"

// Columns are the sortable fields of a search result.
var Columns = []collection.Column[StudyOutput]{
	{Key: "year", Label: "Year", Kind: collection.Numeric, Number: func(s StudyOutput) float64 { return float64(s.Year) }},
	{Key: "title", Label: "Title", Kind: collection.Textual, Text: func(s StudyOutput) string { return s.Title }},
	{Key: "authors", Label: "Authors", Kind: collection.Textual, Text: func(s StudyOutput) string { return s.Authors }},
	{Key: "journal", Label: "Journal", Kind: collection.Textual, Text: func(s StudyOutput) string { return s.Journal }},
}

// DefaultSort lists the newest studies first.
var DefaultSort = collection.Sort{Key: "year", Direction: collection.Desc}
