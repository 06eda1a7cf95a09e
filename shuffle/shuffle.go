// Package shuffle provides the ordering helpers used to scramble and mutate
// fragment orderings. All helpers return new slices and never modify input.
package shuffle

import "slices"

// Source yields uniform integers in [0, n)
// Implementations must return 0 for n <= 0
type Source interface {
	Intn(n int) int
}

// SourceFunc adapts a function to Source
type SourceFunc func(n int) int

// Intn implements Source
func (f SourceFunc) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return f(n)
}

// Identity is a Source that keeps Shuffle output in input order
var Identity Source = SourceFunc(func(n int) int { return n - 1 })

// Shuffle returns a shuffled copy of items (Fisher-Yates, back to front)
func Shuffle[T any](items []T, src Source) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Permutation returns a shuffled copy of [0, n)
func Permutation(n int, src Source) []int {
	if n <= 0 {
		return []int{}
	}
	return Shuffle(Range(n), src)
}

// Range returns [0, n)
func Range(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Remove returns items without the first occurrence of item
// Absent item returns the input slice itself
func Remove[T comparable](items []T, item T) []T {
	idx := slices.Index(items, item)
	if idx < 0 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

// Insert returns a copy of items with item placed at index
// Index is clamped to [0, len(items)]
func Insert[T any](items []T, index int, item T) []T {
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	return append(out, items[index:]...)
}

// Append returns a copy of items with item at the end
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Without returns items with every element of drop filtered out, preserving order
func Without[T comparable](items []T, drop []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !slices.Contains(drop, it) {
			out = append(out, it)
		}
	}
	return out
}
