// Package highlight decides how doc comment text is styled.
//
// An [Annotator] walks a [doctree.Node] comment tree and resolves the values
// of every markup tag it has a [Rule] for, using package stitch for values
// that cross comment lines. Each value becomes a [Highlight]: an absolute
// range plus a [Style] that a renderer maps to a concrete look.
package highlight
