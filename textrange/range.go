package textrange

import "fmt"

// Range is a half-open span [Start, End) of byte offsets into one text
// buffer.
//
// A Range carries no reference to the buffer it was computed against.
// Ranges relative to different buffers (a fragment and its parent, say) must
// be brought into the same coordinate space with [Range.Shift] before they
// are compared.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// New returns the Range [start, end). It panics if start > end.
func New(start, end int) Range {
	if start > end {
		panic(fmt.Sprintf("textrange: invalid range [%d, %d)", start, end))
	}

	return Range{Start: start, End: end}
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether r covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Shift returns r moved right by delta bytes.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// Contains reports whether other lies entirely within r. Equal ranges
// contain each other.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// ContainsOffset reports whether off lies in [r.Start, r.End).
func (r Range) ContainsOffset(off int) bool {
	return r.Start <= off && off < r.End
}

// Intersects reports whether r and other share at least one byte.
func (r Range) Intersects(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Substring returns the part of text covered by r. Out-of-bounds ranges are
// clamped to text.
func (r Range) Substring(text string) string {
	start := min(max(r.Start, 0), len(text))
	end := min(max(r.End, start), len(text))

	return text[start:end]
}

// String implements [fmt.Stringer].
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
