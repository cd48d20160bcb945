package stitch

import (
	"go.jacobcolvin.com/jdcr/doctree"
	"go.jacobcolvin.com/jdcr/markup"
	"go.jacobcolvin.com/jdcr/textrange"
)

// MultiLineTagRanges resolves an HTML tag that ends in the fragment at index
// of parent but starts in an earlier sibling, such as
//
//	<a
//	 * href="...">
//
// It returns the pieces of the tag in parent's coordinates, in document
// order: the incomplete start in the earlier sibling, every text-bearing
// sibling in between, and the incomplete end in the fragment at index.
// Whitespace and line decoration between the pieces are left out, as is
// the single space after each line's asterisks; pieces left empty are
// dropped. It returns nil when the fragment has no incomplete end or no
// earlier sibling has an incomplete start.
func MultiLineTagRanges(parent *doctree.Node, index int) []textrange.Range {
	node := parent.Child(index)
	if node == nil || node.Kind != doctree.Data {
		return nil
	}

	end, ok := markup.IncompleteTagEnd(node.Text)
	if !ok {
		return nil
	}

	pieces := prepend(parent, nil, end.Range.Shift(node.Offset))

	for i := index - 1; i >= 0; i-- {
		prev := parent.Children[i]
		if !prev.IsTextBearing() {
			continue
		}

		start, ok := markup.IncompleteTagStart(prev.Text)
		if !ok {
			pieces = prepend(parent, pieces, prev.Range())
			continue
		}

		return prepend(parent, pieces, start.Range.Shift(prev.Offset))
	}

	return nil
}

// prepend adds r, without its decoration space, in front of pieces.
func prepend(parent *doctree.Node, pieces []textrange.Range, r textrange.Range) []textrange.Range {
	r = doctree.TrimDecorationSpace(parent, r)
	if r.IsEmpty() {
		return pieces
	}

	return append([]textrange.Range{r}, pieces...)
}

// Forward resolves a value of tag that starts at start, in parent's
// coordinates, inside the fragment at index and is closed in that fragment
// or a later sibling.
//
// Data siblings are scanned in document order for the first close marker of
// tag that has no open marker before it in its fragment, or for a
// multi-line close tag (see [MultiLineTagRanges]). The value is returned in
// parent's coordinates, split around line decorations by
// [doctree.ExcludeLineBreaks]. It returns nil when no close marker follows.
func Forward(parent *doctree.Node, index int, tag markup.Tag, start int) []textrange.Range {
	end, ok := closeOffset(parent, index, tag, start)
	if !ok {
		return nil
	}

	return doctree.ExcludeLineBreaks(parent, textrange.New(start, end))
}

// Backward is the mirror of [Forward]: it resolves a value of tag that ends
// at end, in parent's coordinates, inside the fragment at index and was
// opened in that fragment or an earlier sibling. It returns nil when no
// open marker precedes it.
func Backward(parent *doctree.Node, index int, tag markup.Tag, end int) []textrange.Range {
	start, ok := openOffset(parent, index, tag, end)
	if !ok {
		return nil
	}

	return doctree.ExcludeLineBreaks(parent, textrange.New(start, end))
}

// TagValues returns every value of tag that starts in the fragment at index
// of parent, in parent's coordinates. Values opened in this fragment and
// closed in a later one are stitched with [Forward]; values closed here but
// opened earlier are skipped, since they are reported for the fragment
// that opens them.
func TagValues(parent *doctree.Node, index int, tag markup.Tag) []textrange.Range {
	node := parent.Child(index)
	if node == nil || node.Kind != doctree.Data {
		return nil
	}

	var ranges []textrange.Range

	for _, v := range markup.Values(node.Text, tag, markup.HTMLTags(node.Text)) {
		switch v.Kind {
		case markup.Complete:
			ranges = append(ranges, v.Range.Shift(node.Offset))
		case markup.Unclosed:
			ranges = append(ranges, Forward(parent, index, tag, v.Range.Start+node.Offset)...)
		case markup.Unopened:
		}
	}

	// An open tag split over lines ends in this fragment.
	if pieces := MultiLineTagRanges(parent, index); len(pieces) > 0 && tag.OpenIn(parent.Join(pieces)) {
		ranges = append(ranges, Forward(parent, index, tag, pieces[len(pieces)-1].End)...)
	}

	return ranges
}

func closeOffset(parent *doctree.Node, index int, tag markup.Tag, start int) (int, bool) {
	for i := index; i < len(parent.Children); i++ {
		n := parent.Children[i]
		if n.Kind != doctree.Data {
			continue
		}

		for _, v := range markup.Values(n.Text, tag, markup.HTMLTags(n.Text)) {
			if v.Kind != markup.Unopened {
				continue
			}

			// "</b> ... <b>" in the starting fragment closes an earlier value.
			if end := v.Range.End + n.Offset; end >= start {
				return end, true
			}
		}

		pieces := MultiLineTagRanges(parent, i)
		if len(pieces) > 0 && pieces[0].Start >= start && tag.CloseIn(parent.Join(pieces)) {
			return pieces[0].Start, true
		}
	}

	return 0, false
}

func openOffset(parent *doctree.Node, index int, tag markup.Tag, end int) (int, bool) {
	for i := min(index, len(parent.Children)-1); i >= 0; i-- {
		n := parent.Children[i]
		if n.Kind != doctree.Data {
			continue
		}

		values := markup.Values(n.Text, tag, markup.HTMLTags(n.Text))
		for j := len(values) - 1; j >= 0; j-- {
			if values[j].Kind != markup.Unclosed {
				continue
			}

			if start := values[j].Range.Start + n.Offset; start <= end {
				return start, true
			}
		}

		pieces := MultiLineTagRanges(parent, i)
		if len(pieces) > 0 && pieces[len(pieces)-1].End <= end && tag.OpenIn(parent.Join(pieces)) {
			return pieces[len(pieces)-1].End, true
		}
	}

	return 0, false
}
