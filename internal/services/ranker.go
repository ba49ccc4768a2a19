package services

import (
	"cmp"
	"slices"
)

// TopN orders entries by key descending, ties broken by name ascending, and
// keeps the first n. A negative n keeps everything. The input is not modified.
func TopN[T any](entries []T, n int, key func(T) float64, name func(T) string) []T {
	return rank(entries, n, key, name, true)
}

// BottomN is TopN with the primary key ascending.
func BottomN[T any](entries []T, n int, key func(T) float64, name func(T) string) []T {
	return rank(entries, n, key, name, false)
}

// Extremes returns the single top and bottom entries. The bottom slice is
// empty when it would name the same entry as the top, so a one-entry
// dataset is never shown as both most and least.
func Extremes[T any](entries []T, key func(T) float64, name func(T) string) (most, least []T) {
	most = TopN(entries, 1, key, name)
	least = BottomN(entries, 1, key, name)
	if len(most) == 1 && len(least) == 1 && name(most[0]) == name(least[0]) {
		least = []T{}
	}
	return most, least
}

func rank[T any](entries []T, n int, key func(T) float64, name func(T) string, descending bool) []T {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b T) int {
		byKey := cmp.Compare(key(a), key(b))
		if descending {
			byKey = -byKey
		}
		if byKey != 0 {
			return byKey
		}
		return cmp.Compare(name(a), name(b))
	})

	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []T{}
	}
	return sorted
}
