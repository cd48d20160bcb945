// Package stitch resolves tag values and HTML tags that cross fragment
// boundaries inside a [doctree.Node].
//
// Package markup only sees one fragment at a time, so a value opened on one
// comment line and closed on a later one shows up as an unclosed value in
// the first fragment and an unopened value in the last. [Forward] and
// [Backward] walk the siblings between the two and return the whole value
// in the parent's coordinates, with the line decoration between lines cut
// out. [MultiLineTagRanges] does the same for a single HTML tag whose "<"
// and ">" are on different lines.
//
// Unresolvable input (a tag never closed before the end of the comment)
// yields nil, and the caller leaves that text alone.
package stitch
