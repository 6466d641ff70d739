package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// IterSeq2Sorted iterates a map in ascending key order.
func IterSeq2Sorted[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}
