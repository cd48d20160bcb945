package doctree

import (
	"strings"

	"go.jacobcolvin.com/jdcr/textrange"
)

// Kind identifies the lexical role of a [Node].
type Kind int

const (
	// Comment is the root of one doc comment.
	Comment Kind = iota + 1
	// CommentStart is the "/**" opener.
	CommentStart
	// CommentEnd is the "*/" closer.
	CommentEnd
	// Data is comment body text.
	Data
	// Whitespace is a run of whitespace; after a line break it is usually
	// followed by [LeadingAsterisks].
	Whitespace
	// LeadingAsterisks is the "*" decoration at the start of a comment line.
	LeadingAsterisks
	// InlineTag is an inline doc tag such as "{@code x}". Its parts are
	// children.
	InlineTag
	// InlineTagStart is the "{@" that opens an inline tag.
	InlineTagStart
	// InlineTagEnd is the "}" that closes an inline tag.
	InlineTagEnd
	// TagName is the name of an inline tag, such as "code".
	TagName
	// Reference is the program element referenced by {@link} and friends.
	Reference
)

var kindNames = map[Kind]string{
	Comment:          "comment",
	CommentStart:     "comment-start",
	CommentEnd:       "comment-end",
	Data:             "data",
	Whitespace:       "whitespace",
	LeadingAsterisks: "leading-asterisks",
	InlineTag:        "inline-tag",
	InlineTagStart:   "inline-tag-start",
	InlineTagEnd:     "inline-tag-end",
	TagName:          "tag-name",
	Reference:        "reference",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return "unknown"
}

// Node is one fragment of a doc comment.
//
// Offset is relative to the parent node; for a root [Comment] node it is
// the absolute offset of the comment in its document. The texts of a node's
// children concatenate to the node's own text. Siblings are addressed by
// index into the parent's Children.
type Node struct {
	Name     string
	Text     string
	Children []*Node
	Kind     Kind
	Offset   int
}

// Leaf returns a childless node. Its Offset is assigned by [NewParent].
func Leaf(kind Kind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// NewParent returns a node of the given kind at offset whose children are
// laid out back to back. The node's text is the concatenation of the
// children's texts, and each child's Offset is overwritten accordingly.
func NewParent(kind Kind, name string, offset int, children ...*Node) *Node {
	var sb strings.Builder

	for _, c := range children {
		c.Offset = sb.Len()
		sb.WriteString(c.Text)
	}

	return &Node{
		Kind:     kind,
		Name:     name,
		Text:     sb.String(),
		Offset:   offset,
		Children: children,
	}
}

// Range returns the node's range in its parent's coordinates.
func (n *Node) Range() textrange.Range {
	return textrange.New(n.Offset, n.Offset+len(n.Text))
}

// End returns the offset just past the node, in its parent's coordinates.
func (n *Node) End() int {
	return n.Offset + len(n.Text)
}

// IsTextBearing reports whether markup inside n may continue a tag started
// in a sibling: data fragments and inline tags.
func (n *Node) IsTextBearing() bool {
	return n.Kind == Data || n.Kind == InlineTag
}

// IsLiteral reports whether n is an inline tag whose content is shown
// verbatim, so HTML inside it is not markup.
func (n *Node) IsLiteral() bool {
	return n.Kind == InlineTag && (n.Name == "code" || n.Name == "literal")
}

// Child returns the child at index i, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

// Join returns the concatenated text of n covered by ranges, which are in
// n's coordinates.
func (n *Node) Join(ranges []textrange.Range) string {
	var sb strings.Builder
	for _, r := range ranges {
		sb.WriteString(r.Substring(n.Text))
	}

	return sb.String()
}

// Visitor is called by [Walk] for each node with the absolute offset of the
// node's parent. Returning false skips the node's children.
type Visitor func(parent *Node, index int, parentBase int) bool

// Walk visits the children of root depth-first, in document order. The root
// itself is not visited.
func Walk(root *Node, visit Visitor) {
	walk(root, root.Offset, visit)
}

func walk(parent *Node, base int, visit Visitor) {
	for i, child := range parent.Children {
		if !visit(parent, i, base) {
			continue
		}

		if len(child.Children) > 0 {
			walk(child, base+child.Offset, visit)
		}
	}
}
