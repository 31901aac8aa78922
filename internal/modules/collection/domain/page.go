package domain

import "math"

// TotalPages is max(1, ceil(n/pageSize)).
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage keeps pageNumber within [1, totalPages].
func ClampPage(pageNumber, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	return pageNumber
}

// Page returns records[(pageNumber-1)*pageSize : pageNumber*pageSize] clamped
// to the bounds of records.
func Page[T any](records []T, pageNumber, pageSize int) []T {
	if pageSize <= 0 || pageNumber < 1 || len(records) == 0 {
		return nil
	}
	// Compare pages before multiplying so huge page numbers cannot overflow.
	if pageNumber > TotalPages(len(records), pageSize) {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	end := min(start+pageSize, len(records))
	return records[start:end]
}

// Offset is the index in the full sequence of the first row of pageNumber.
// It saturates at math.MaxInt instead of overflowing.
func Offset(pageNumber, pageSize int) int {
	if pageNumber < 1 || pageSize <= 0 {
		return 0
	}
	if pageNumber-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (pageNumber - 1) * pageSize
}
