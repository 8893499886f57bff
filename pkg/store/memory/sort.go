package memory

import "sort"

// sortByID keeps map-backed listings deterministic: callers see records in
// creation order.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}
