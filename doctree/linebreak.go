package doctree

import "go.jacobcolvin.com/jdcr/textrange"

// ExcludeLineBreaks splits r, a range in parent's coordinates, into the
// pieces that lie between comment line decorations.
//
// A line break is a [Whitespace] child immediately followed by a
// [LeadingAsterisks] child. For every such break starting inside r, the
// whitespace, the asterisks, and one space after the asterisks are cut out
// of r. Empty pieces are dropped.
func ExcludeLineBreaks(parent *Node, r textrange.Range) []textrange.Range {
	var pieces []textrange.Range

	prev := r.Start

	for i, ws := range parent.Children {
		stars := parent.Child(i + 1)
		if ws.Kind != Whitespace || stars == nil || stars.Kind != LeadingAsterisks {
			continue
		}

		if !r.ContainsOffset(ws.Offset) {
			continue
		}

		if ws.Offset > prev {
			pieces = append(pieces, textrange.New(prev, ws.Offset))
		}

		prev = stars.End()
		if prev < r.End && prev < len(parent.Text) && parent.Text[prev] == ' ' {
			prev++
		}
	}

	if prev < r.End {
		pieces = append(pieces, textrange.New(prev, r.End))
	}

	return pieces
}

// TrimDecorationSpace drops the single space that follows a line's leading
// asterisks from the start of r, a range in parent's coordinates. Any other
// range is returned unchanged.
func TrimDecorationSpace(parent *Node, r textrange.Range) textrange.Range {
	if r.IsEmpty() || r.Start >= len(parent.Text) || parent.Text[r.Start] != ' ' {
		return r
	}

	for _, c := range parent.Children {
		if c.Kind == LeadingAsterisks && c.End() == r.Start {
			return textrange.New(r.Start+1, r.End)
		}
	}

	return r
}
