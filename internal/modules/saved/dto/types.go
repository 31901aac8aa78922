package dto

import "time"

type StudyInput struct {
	Year    int
	Title   string
	Authors string
	Journal string
}

// SavedOutput is one saved entry. Index is its position in insertion order
// and is what RemoveAt expects, whatever order the entry is displayed in.
type SavedOutput struct {
	Index   int
	Year    int
	Title   string
	Authors string
	Journal string
	SavedAt time.Time
}

type ExportInput struct {
	Format string
}

type ExportOutput struct {
	Filename string
	Location string
	Format   string
	Count    int
}
