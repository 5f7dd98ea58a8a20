package bundle

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

// SortKey selects how files are ordered in the artifact.
type SortKey string

const (
	// SortByName orders by full path.
	SortByName SortKey = "name"
	// SortByType orders by extension, then by full path.
	SortByType SortKey = "type"
)

// ParseSortKey maps a user value to a SortKey. "type" (case-insensitive)
// selects SortByType; every other value, including "", falls back to SortByName.
func ParseSortKey(s string) SortKey {
	if strings.EqualFold(strings.TrimSpace(s), string(SortByType)) {
		return SortByType
	}
	return SortByName
}

// Sort orders paths in place. Comparisons are ordinal byte comparisons.
func Sort(paths []string, key SortKey) {
	switch key {
	case SortByType:
		slices.SortStableFunc(paths, func(a, b string) int {
			return cmp.Or(
				strings.Compare(filepath.Ext(a), filepath.Ext(b)),
				strings.Compare(a, b),
			)
		})
	default:
		slices.Sort(paths)
	}
}
