// Package dashboard reduces entity collections into summary counts.
package dashboard

// CountBy tallies items by key in one pass. Keys with no items are absent.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, it := range items {
		out[key(it)]++
	}
	return out
}
