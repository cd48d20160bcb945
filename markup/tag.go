package markup

import (
	"strings"
	"unicode"
)

// Tag is an open/close marker pair, such as "<b>" and "</b>".
//
// Matching uses both markers with all whitespace removed, and candidate text is
// normalized the same way before matching, so a marker that was wrapped
// across source lines ("<a\n href=") still matches its single-line form.
// Matching is substring containment: the open marker "<a href=" matches any
// anchor that carries an href attribute.
//
// Create instances with [NewTag].
type Tag struct {
	name     string
	open     string
	close    string
	rawOpen  string
	rawClose string
}

// NewTag returns a [Tag] called name with the given markers.
func NewTag(name, open, closing string) Tag {
	return Tag{
		name:     name,
		open:     StripSpace(open),
		close:    StripSpace(closing),
		rawOpen:  open,
		rawClose: closing,
	}
}

// Name returns the tag's identifier, used to attribute resolved ranges.
func (t Tag) Name() string { return t.name }

// Open returns the normalized open marker.
func (t Tag) Open() string { return t.open }

// Close returns the normalized close marker.
func (t Tag) Close() string { return t.close }

// RawOpen returns the open marker as given to [NewTag].
func (t Tag) RawOpen() string { return t.rawOpen }

// RawClose returns the close marker as given to [NewTag].
func (t Tag) RawClose() string { return t.rawClose }

// IsZero reports whether t has no markers.
func (t Tag) IsZero() bool {
	return t.open == "" && t.close == ""
}

// OpenIn reports whether text contains the open marker.
func (t Tag) OpenIn(text string) bool {
	return t.open != "" && strings.Contains(StripSpace(text), t.open)
}

// CloseIn reports whether text contains the close marker.
func (t Tag) CloseIn(text string) bool {
	return t.close != "" && strings.Contains(StripSpace(text), t.close)
}

// closeBeforeOpen reports whether the first close marker in text precedes
// the first open marker, or text has a close marker and no open marker.
func (t Tag) closeBeforeOpen(text string) bool {
	norm := StripSpace(text)

	c := strings.Index(norm, t.close)
	if t.close == "" || c < 0 {
		return false
	}

	o := strings.Index(norm, t.open)

	return t.open == "" || o < 0 || c < o
}

// StripSpace returns text with every whitespace character removed.
func StripSpace(text string) string {
	if strings.IndexFunc(text, unicode.IsSpace) < 0 {
		return text
	}

	var sb strings.Builder

	sb.Grow(len(text))

	for _, r := range text {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
