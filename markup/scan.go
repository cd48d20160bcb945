package markup

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/jdcr/textrange"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	htmlEntityPattern = regexp.MustCompile(`&[^;]+;`)
)

// Direction tells which side of a [Boundary] lies outside the fragment.
type Direction int

const (
	// StartOnly marks a trailing "<" whose ">" is in a later fragment.
	StartOnly Direction = iota + 1
	// EndOnly marks a leading ">" whose "<" is in an earlier fragment.
	EndOnly
)

// String implements [fmt.Stringer].
func (d Direction) String() string {
	switch d {
	case StartOnly:
		return "start-only"
	case EndOnly:
		return "end-only"
	}

	return "unknown"
}

// Boundary is the part of an HTML tag that lies inside one fragment when the
// tag itself crosses a fragment edge.
type Boundary struct {
	Range     textrange.Range
	Direction Direction
}

// BracketSpans returns every "<...>" occurrence in text, in order, with
// touching occurrences merged: "<b><i>" yields the single span [0, 6).
func BracketSpans(text string) []textrange.Range {
	var spans []textrange.Range

	for _, m := range htmlTagPattern.FindAllStringIndex(text, -1) {
		last := len(spans) - 1
		if last >= 0 && spans[last].End == m[0] {
			spans[last].End = m[1]
			continue
		}

		spans = append(spans, textrange.New(m[0], m[1]))
	}

	return spans
}

// HTMLTags returns every "<...>" occurrence in text, in order, without
// merging touching occurrences.
func HTMLTags(text string) []textrange.Range {
	return findAll(htmlTagPattern, text)
}

// EntityRefs returns every "&...;" occurrence in text, in order. Touching
// references stay separate: "&lt;&lt;" yields [0, 4) and [4, 8).
func EntityRefs(text string) []textrange.Range {
	return findAll(htmlEntityPattern, text)
}

// IncompleteTagStart finds an HTML tag that starts in text but ends in a
// later fragment: the last "<" in text, when no ">" follows it. The returned
// range runs from that "<" to the end of text.
func IncompleteTagStart(text string) (Boundary, bool) {
	i := strings.LastIndexByte(text, '<')
	if i < 0 || strings.IndexByte(text[i:], '>') >= 0 {
		return Boundary{}, false
	}

	return Boundary{Range: textrange.New(i, len(text)), Direction: StartOnly}, true
}

// IncompleteTagEnd finds an HTML tag that ends in text but started in an
// earlier fragment: the first ">" in text, when no "<" precedes it. The
// returned range runs from the start of text through that ">".
func IncompleteTagEnd(text string) (Boundary, bool) {
	i := strings.IndexByte(text, '>')
	if i < 0 || strings.IndexByte(text[:i], '<') >= 0 {
		return Boundary{}, false
	}

	return Boundary{Range: textrange.New(0, i+1), Direction: EndOnly}, true
}

func findAll(re *regexp.Regexp, text string) []textrange.Range {
	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	ranges := make([]textrange.Range, 0, len(matches))
	for _, m := range matches {
		ranges = append(ranges, textrange.New(m[0], m[1]))
	}

	return ranges
}
