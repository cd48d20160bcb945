// Package javadoc finds doc comments in Java source and tokenizes them into
// [doctree.Node] trees.
//
// Each comment becomes a [doctree.Comment] root whose children are the
// "/**" opener, runs of body text ([doctree.Data]), the whitespace and
// asterisks that decorate each line, inline tags such as "{@code x}" with
// their own children, and the "*/" closer. Offsets of roots are absolute
// positions in the source, so ranges computed on a tree map back onto the
// file.
//
// The scanner is deliberately shallow: it knows enough Java to skip
// literals and ordinary comments, and nothing else.
package javadoc
