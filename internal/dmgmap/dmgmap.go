// Package dmgmap holds helpers for maps keyed by an integer outcome (damage
// or success count) whose values are probabilities or raw tallies.
package dmgmap

import "sort"

// Number is the value type of an outcome map.
type Number interface {
	~int | ~int64 | ~float64
}

// AddToMapValue upserts m[key] += delta.
func AddToMapValue[V Number](m map[int]V, key int, delta V) {
	m[key] += delta
}

// NormalizeMapValues divides every value in m by divisor in place.
func NormalizeMapValues[V Number](m map[int]V, divisor V) {
	for k := range m {
		m[k] /= divisor
	}
}

// Ratios returns a probability map built from a tally map and its total.
func Ratios[V Number](counts map[int]V, total V) map[int]float64 {
	out := make(map[int]float64, len(counts))
	for k, v := range counts {
		out[k] = float64(v) / float64(total)
	}
	return out
}

// Sum returns the total of all values.
func Sum[V Number](m map[int]V) V {
	var s V
	for _, v := range m {
		s += v
	}
	return s
}

// Mean returns the value-weighted mean of the keys. For a probability map
// this is the expected outcome.
func Mean(m map[int]float64) float64 {
	mean := 0.0
	for k, p := range m {
		mean += float64(k) * p
	}
	return mean
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V Number](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Clone returns a shallow copy of m.
func Clone[V Number](m map[int]V) map[int]V {
	out := make(map[int]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
