package gridaxis

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidIndexError reports physical indices that cannot be added to a skip
// registry: negative, or not strictly less than the current source count.
// The registry is left unchanged when this error is returned.
type InvalidIndexError struct {
	Indices []int // offending values, sorted ascending
	Count   int   // physical count the batch was validated against
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid physical indices %s for source of %d", formatIndices(e.Indices), e.Count)
}

// InvalidPermutationError reports an ordering that is not a valid permutation
// of the full physical range. The order registry is left unchanged.
type InvalidPermutationError struct {
	Reason string // "length", "range", or "duplicate"
	Value  int    // offending value, or supplied length for a length mismatch
	Count  int    // expected permutation length
}

func (e *InvalidPermutationError) Error() string {
	switch e.Reason {
	case "length":
		return fmt.Sprintf("invalid permutation: length %d, want %d", e.Value, e.Count)
	case "duplicate":
		return fmt.Sprintf("invalid permutation: duplicate value %d", e.Value)
	default:
		return fmt.Sprintf("invalid permutation: value %d out of range [0,%d)", e.Value, e.Count)
	}
}

// OutOfRangeError reports a visual index at or beyond the visible count.
type OutOfRangeError struct {
	Visual  int
	Visible int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("visual index %d out of range: %d visible", e.Visual, e.Visible)
}

func formatIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, v := range indices {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// sortedCopy returns a sorted copy of indices with duplicates removed.
func sortedCopy(indices []int) []int {
	out := make([]int, 0, len(indices))
	seen := make(map[int]struct{}, len(indices))
	for _, v := range indices {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
