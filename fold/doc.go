// Package fold computes the regions of a doc comment that collapse into
// short placeholders, and tracks which of them are collapsed.
//
// A [Builder] folds HTML tags to nothing (list items to a dash), entity
// references to the character they stand for, and inline tags down to
// their content. Regions of one comment share a group so a viewer can
// expand a whole comment at once through a [State].
package fold
