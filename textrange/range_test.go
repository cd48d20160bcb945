package textrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jdcr/textrange"
)

func TestNewPanicsOnInvertedRange(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { textrange.New(5, 4) })
	assert.NotPanics(t, func() { textrange.New(4, 4) })
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		outer textrange.Range
		inner textrange.Range
		want  bool
	}{
		"equal ranges": {
			outer: textrange.New(2, 5),
			inner: textrange.New(2, 5),
			want:  true,
		},
		"strictly inside": {
			outer: textrange.New(0, 10),
			inner: textrange.New(3, 4),
			want:  true,
		},
		"overlapping end": {
			outer: textrange.New(0, 5),
			inner: textrange.New(3, 6),
			want:  false,
		},
		"empty inner at end": {
			outer: textrange.New(0, 5),
			inner: textrange.New(5, 5),
			want:  true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.outer.Contains(tc.inner))
		})
	}
}

func TestRangeContainsOffset(t *testing.T) {
	t.Parallel()

	r := textrange.New(2, 4)

	assert.False(t, r.ContainsOffset(1))
	assert.True(t, r.ContainsOffset(2))
	assert.True(t, r.ContainsOffset(3))
	assert.False(t, r.ContainsOffset(4))
}

func TestRangeSubstring(t *testing.T) {
	t.Parallel()

	text := "<b>bold</b>"

	assert.Equal(t, "bold", textrange.New(3, 7).Substring(text))
	assert.Equal(t, "</b>", textrange.New(7, 40).Substring(text))
	assert.Empty(t, textrange.New(20, 30).Substring(text))
}

func TestRangeShift(t *testing.T) {
	t.Parallel()

	r := textrange.New(1, 3).Shift(10)

	assert.Equal(t, textrange.New(11, 13), r)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "[11, 13)", r.String())
}

func TestRangeIntersects(t *testing.T) {
	t.Parallel()

	assert.True(t, textrange.New(0, 3).Intersects(textrange.New(2, 5)))
	assert.False(t, textrange.New(0, 3).Intersects(textrange.New(3, 5)))
}
