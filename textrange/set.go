package textrange

import "slices"

// Dedupe returns ranges without the entries that are contained in an
// earlier kept entry. Ranges are processed in order, so the first container
// wins; a later container does not evict earlier contained ranges.
//
// The input slice is not modified.
func Dedupe(ranges []Range) []Range {
	return DedupeFunc(ranges, Range.Contains)
}

// DedupeFunc is [Dedupe] for values that carry a range. covers reports
// whether the kept value makes item redundant.
func DedupeFunc[T any](items []T, covers func(kept, item T) bool) []T {
	kept := make([]T, 0, len(items))

	for _, item := range items {
		if slices.ContainsFunc(kept, func(k T) bool { return covers(k, item) }) {
			continue
		}

		kept = append(kept, item)
	}

	return kept
}

// MergeAdjacent folds each range into its predecessor when the predecessor
// ends exactly where it starts. The input should be sorted by start offset.
//
// The input slice is not modified.
func MergeAdjacent(sorted []Range) []Range {
	return MergeAdjacentFunc(sorted, func(prev, next Range) (Range, bool) {
		if prev.End != next.Start {
			return prev, false
		}

		return New(prev.Start, next.End), true
	})
}

// MergeAdjacentFunc is [MergeAdjacent] for values that carry a range. merge
// returns the combination of prev and next, and false when they must stay
// apart.
func MergeAdjacentFunc[T any](sorted []T, merge func(prev, next T) (T, bool)) []T {
	merged := make([]T, 0, len(sorted))

	for _, item := range sorted {
		last := len(merged) - 1
		if last >= 0 {
			if m, ok := merge(merged[last], item); ok {
				merged[last] = m
				continue
			}
		}

		merged = append(merged, item)
	}

	return merged
}

// Union returns the smallest range covering every range in rs, and false
// if rs is empty.
func Union(rs ...Range) (Range, bool) {
	if len(rs) == 0 {
		return Range{}, false
	}

	u := rs[0]
	for _, r := range rs[1:] {
		u.Start = min(u.Start, r.Start)
		u.End = max(u.End, r.End)
	}

	return u, true
}

// Compare orders ranges by start offset, longer ranges first on a tie, so
// a container sorts before the ranges it contains.
func Compare(a, b Range) int {
	if a.Start != b.Start {
		return a.Start - b.Start
	}

	return b.End - a.End
}
