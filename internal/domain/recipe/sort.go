package recipe

import "strings"

// SortType enumerates catalog page orderings.
type SortType string

const (
	// SortPopular orders by votes descending, then rating descending.
	SortPopular SortType = "popular"
	// SortNewest orders by publication time descending.
	SortNewest SortType = "newest"
)

// ParseSortType resolves a raw sort name case-insensitively. An
// unrecognized value falls back to SortPopular rather than failing: page
// browsing normalizes bad input instead of rejecting it.
func ParseSortType(raw string) SortType {
	if SortType(strings.ToLower(raw)) == SortNewest {
		return SortNewest
	}
	return SortPopular
}
