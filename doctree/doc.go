// Package doctree models a doc comment as a plain tree of text fragments.
//
// A root [Node] of kind [Comment] holds the comment's fragments as children
// in document order: the "/**" opener, data, whitespace, leading asterisks,
// inline tags (which have their own children) and the "*/" closer. Sibling
// navigation is index arithmetic on the parent's Children, and every offset
// is relative to the parent, so ranges found in a fragment are moved into
// the parent's space with [textrange.Range.Shift] by the fragment's Offset.
//
// Trees are produced by a tokenizer (see package javadoc) and are read-only
// afterwards.
package doctree
