package javadoc

import (
	"strings"

	"go.jacobcolvin.com/jdcr/doctree"
)

// referenceTags name the inline tags whose first word is a program element.
var referenceTags = map[string]bool{
	"link":      true,
	"linkplain": true,
	"value":     true,
}

// Parse returns a tree for every doc comment in the Java source src, in
// document order. Block comments, line comments, string and character
// literals are skipped, so "/**" inside them does not start a doc comment.
// An unterminated doc comment ends the scan.
func Parse(src string) []*doctree.Node {
	var comments []*doctree.Node

	for i := 0; i < len(src); {
		rest := src[i:]

		switch {
		case strings.HasPrefix(rest, "//"):
			i += skipLine(rest)

		case strings.HasPrefix(rest, "/**") && !strings.HasPrefix(rest, "/**/"):
			end := strings.Index(rest[3:], "*/")
			if end < 0 {
				return comments
			}

			n := 3 + end + 2
			comments = append(comments, ParseComment(rest[:n], i))
			i += n

		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return comments
			}

			i += 2 + end + 2

		case strings.HasPrefix(rest, `"""`):
			end := strings.Index(rest[3:], `"""`)
			if end < 0 {
				return comments
			}

			i += 3 + end + 3

		case rest[0] == '"' || rest[0] == '\'':
			i += skipQuoted(rest)

		default:
			i++
		}
	}

	return comments
}

// ParseComment tokenizes a single doc comment. text must start with "/**"
// and end with "*/"; offset is the comment's position in its document.
func ParseComment(text string, offset int) *doctree.Node {
	children := []*doctree.Node{doctree.Leaf(doctree.CommentStart, "/**")}

	body := ""
	if len(text) >= 5 {
		body = text[3 : len(text)-2]
	}

	children = append(children, lex(body)...)
	children = append(children, doctree.Leaf(doctree.CommentEnd, "*/"))

	return doctree.NewParent(doctree.Comment, "", offset, children...)
}

// lex splits comment body text into data, whitespace, leading asterisks and
// inline tags.
func lex(s string) []*doctree.Node {
	var nodes []*doctree.Node

	for i := 0; i < len(s); {
		switch {
		case s[i] == '\n' || s[i] == '\r':
			j := i + spaceRun(s[i:])
			nodes = append(nodes, doctree.Leaf(doctree.Whitespace, s[i:j]))
			i = j

			if k := starRun(s[i:]); k > 0 {
				nodes = append(nodes, doctree.Leaf(doctree.LeadingAsterisks, s[i:i+k]))
				i += k
			}

		case strings.HasPrefix(s[i:], "{@"):
			if tag, n, ok := inlineTag(s[i:]); ok {
				nodes = append(nodes, tag)
				i += n

				continue
			}

			j := i + 2 + dataRun(s[i+2:])
			nodes = appendData(nodes, s[i:j])
			i = j

		default:
			j := i + 1 + dataRun(s[i+1:])
			nodes = appendData(nodes, s[i:j])
			i = j
		}
	}

	return nodes
}

// inlineTag parses "{@name ...}" at the start of s. It returns the tag node
// and its length, or false when s does not start with a terminated tag.
func inlineTag(s string) (*doctree.Node, int, bool) {
	j := 2
	for j < len(s) && isLetter(s[j]) {
		j++
	}

	if j == 2 {
		return nil, 0, false
	}

	depth := 1
	k := j

	for ; k < len(s); k++ {
		switch s[k] {
		case '{':
			depth++
		case '}':
			depth--
		}

		if depth == 0 {
			break
		}
	}

	if depth != 0 {
		return nil, 0, false
	}

	name := s[2:j]
	children := []*doctree.Node{
		doctree.Leaf(doctree.InlineTagStart, "{@"),
		doctree.Leaf(doctree.TagName, name),
	}
	children = append(children, lexInlineBody(name, s[j:k])...)
	children = append(children, doctree.Leaf(doctree.InlineTagEnd, "}"))

	return doctree.NewParent(doctree.InlineTag, name, 0, children...), k + 1, true
}

func lexInlineBody(name, s string) []*doctree.Node {
	var nodes []*doctree.Node

	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	if i > 0 {
		nodes = append(nodes, doctree.Leaf(doctree.Whitespace, s[:i]))
	}

	if referenceTags[name] && i < len(s) && s[i] != '\n' && s[i] != '\r' {
		j := i + referenceRun(s[i:])
		nodes = append(nodes, doctree.Leaf(doctree.Reference, s[i:j]))
		i = j
	}

	return append(nodes, lex(s[i:])...)
}

func appendData(nodes []*doctree.Node, text string) []*doctree.Node {
	if last := len(nodes) - 1; last >= 0 && nodes[last].Kind == doctree.Data {
		nodes[last].Text += text
		return nodes
	}

	return append(nodes, doctree.Leaf(doctree.Data, text))
}

// dataRun returns the length of the data prefix of s, which stops at a line
// break or the start of an inline tag.
func dataRun(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' || strings.HasPrefix(s[i:], "{@") {
			return i
		}
	}

	return len(s)
}

// referenceRun returns the length of the program element reference at the
// start of s. Whitespace inside a parameter list does not end it.
func referenceRun(s string) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth = max(depth-1, 0)
		case ' ', '\t', '\n', '\r':
			if depth == 0 {
				return i
			}
		}
	}

	return len(s)
}

func spaceRun(s string) int {
	i := 0
	for i < len(s) && strings.IndexByte(" \t\n\r\f", s[i]) >= 0 {
		i++
	}

	return i
}

func starRun(s string) int {
	i := 0
	for i < len(s) && s[i] == '*' {
		i++
	}

	return i
}

func skipLine(s string) int {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return i + 1
	}

	return len(s)
}

// skipQuoted returns the length of the string or character literal at the
// start of s. An unterminated literal ends at the line break.
func skipQuoted(s string) int {
	quote := s[0]

	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		case '\n':
			return i
		}
	}

	return len(s)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
