// Package textrange provides the half-open [Range] value used by every other
// package in this module, along with the small set operations the markup
// engine needs: [Dedupe] drops ranges contained in earlier ones and
// [MergeAdjacent] joins touching ranges into single runs.
package textrange
