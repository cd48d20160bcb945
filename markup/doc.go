// Package markup finds HTML markup inside the text of a single Javadoc
// comment fragment.
//
// # Scanning
//
// [BracketSpans] locates "<...>" occurrences and merges touching ones, so
// "<b><i>" is one span. [HTMLTags] returns the same occurrences unmerged.
// [EntityRefs] locates "&...;" references. [IncompleteTagStart] and
// [IncompleteTagEnd] detect tags cut in two by a fragment edge.
//
// A ">" can never appear inside a tag and text inside HTML comments is
// scanned like any other text, so "<!-- <b> -->" contains a bold open tag.
//
// # Resolving
//
// A [Tag] is a pair of whitespace-normalized markers. [Values] pairs the
// markers of one tag across the bracket spans of a fragment and reports the
// text strictly between them. Values whose other marker lies in a neighboring
// fragment are reported as [Unclosed] or [Unopened]; package stitch extends
// them across fragments.
//
// Nothing in this package returns an error. Malformed markup produces fewer
// values, never a failure.
package markup
