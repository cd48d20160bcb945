package markup

import "go.jacobcolvin.com/jdcr/textrange"

// Kind classifies a [Value] by which of its markers were found in the
// scanned fragment.
type Kind int

const (
	// Complete values have both markers inside the fragment.
	Complete Kind = iota + 1
	// Unclosed values have an open marker but no close marker after it; the
	// range runs to the end of the fragment and must be extended forward.
	Unclosed
	// Unopened values have a close marker with no open marker before it; the
	// range starts at offset 0 and must be extended backward.
	Unopened
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Complete:
		return "complete"
	case Unclosed:
		return "unclosed"
	case Unopened:
		return "unopened"
	}

	return "unknown"
}

// Value is the text between a tag's open and close markers, relative to the
// fragment it was found in.
type Value struct {
	Range textrange.Range
	Kind  Kind
}

// marker is an optional offset into the scanned text.
type marker struct {
	off int
	ok  bool
}

// Values returns the values of tag in text, in document order, given the
// bracket spans of text (see [BracketSpans]).
//
// Spans are scanned in order. A span containing the open marker records its
// end offset, replacing any earlier unpaired open; a span containing the
// close marker records its start offset. As soon as an open precedes a close
// the pair is emitted as a [Complete] value and both markers are cleared, so
// each open pairs with at most one close.
//
// A close marker seen before any open marker yields an [Unopened] value
// [0, close). An open marker still unpaired after the last span yields an
// [Unclosed] value [open, len(text)).
func Values(text string, tag Tag, spans []textrange.Range) []Value {
	var (
		values        []Value
		open, closing marker
		seenOpen      bool
	)

	for _, span := range spans {
		s := span.Substring(text)
		hasOpen := tag.OpenIn(s)
		hasClose := tag.CloseIn(s)
		closeFirst := hasClose && tag.closeBeforeOpen(s)

		if closeFirst && !seenOpen {
			values = append(values, Value{
				Range: textrange.New(0, span.Start),
				Kind:  Unopened,
			})
		}

		// "<b></b>" merged into one span: an empty pair, nothing to emit.
		if hasOpen && hasClose && !closeFirst {
			open, closing = marker{}, marker{}
			seenOpen = true

			continue
		}

		if hasOpen {
			open = marker{off: span.End, ok: true}
			seenOpen = true
		}

		if hasClose {
			closing = marker{off: span.Start, ok: true}
		}

		if open.ok && closing.ok && open.off < closing.off {
			values = append(values, Value{
				Range: textrange.New(open.off, closing.off),
				Kind:  Complete,
			})
			open, closing = marker{}, marker{}
		}
	}

	if open.ok && (!closing.ok || closing.off < open.off) {
		values = append(values, Value{
			Range: textrange.New(open.off, len(text)),
			Kind:  Unclosed,
		})
	}

	return values
}

// ValuesOfTag returns the ranges of every value of tag in text, including
// [Unclosed] and [Unopened] ones. Tags are matched individually (see
// [HTMLTags]), so tags nested directly inside each other resolve separately.
func ValuesOfTag(text string, tag Tag) []textrange.Range {
	values := Values(text, tag, HTMLTags(text))
	if len(values) == 0 {
		return nil
	}

	ranges := make([]textrange.Range, 0, len(values))
	for _, v := range values {
		ranges = append(ranges, v.Range)
	}

	return ranges
}

// CompleteValues returns the [Complete] values of every tag in tags found in
// text, in tag order, dropping values contained in an earlier one. Touching
// tags are matched as one unit (see [BracketSpans]), so "<b><i>x</b></i>"
// yields the single range around "x".
func CompleteValues(text string, tags []Tag) []textrange.Range {
	spans := BracketSpans(text)
	if len(spans) == 0 {
		return nil
	}

	var ranges []textrange.Range

	for _, tag := range tags {
		for _, v := range Values(text, tag, spans) {
			if v.Kind == Complete {
				ranges = append(ranges, v.Range)
			}
		}
	}

	return textrange.Dedupe(ranges)
}
