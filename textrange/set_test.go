package textrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jdcr/textrange"
)

func TestDedupe(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []textrange.Range
		want  []textrange.Range
	}{
		"empty": {
			input: nil,
			want:  []textrange.Range{},
		},
		"disjoint ranges kept": {
			input: []textrange.Range{textrange.New(0, 2), textrange.New(4, 6)},
			want:  []textrange.Range{textrange.New(0, 2), textrange.New(4, 6)},
		},
		"contained range dropped": {
			input: []textrange.Range{textrange.New(6, 14), textrange.New(6, 14), textrange.New(7, 9)},
			want:  []textrange.Range{textrange.New(6, 14)},
		},
		"later container does not evict": {
			input: []textrange.Range{textrange.New(3, 4), textrange.New(0, 10)},
			want:  []textrange.Range{textrange.New(3, 4), textrange.New(0, 10)},
		},
		"overlap without containment kept": {
			input: []textrange.Range{textrange.New(0, 5), textrange.New(3, 8)},
			want:  []textrange.Range{textrange.New(0, 5), textrange.New(3, 8)},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := textrange.Dedupe(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, textrange.Dedupe(got), "dedupe must be idempotent")
		})
	}
}

func TestMergeAdjacent(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []textrange.Range
		want  []textrange.Range
	}{
		"touching ranges merge": {
			input: []textrange.Range{textrange.New(0, 3), textrange.New(3, 6), textrange.New(6, 10)},
			want:  []textrange.Range{textrange.New(0, 10)},
		},
		"gap keeps ranges apart": {
			input: []textrange.Range{textrange.New(0, 3), textrange.New(4, 6)},
			want:  []textrange.Range{textrange.New(0, 3), textrange.New(4, 6)},
		},
		"input untouched": {
			input: []textrange.Range{textrange.New(1, 2)},
			want:  []textrange.Range{textrange.New(1, 2)},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			before := append([]textrange.Range(nil), tc.input...)

			assert.Equal(t, tc.want, textrange.MergeAdjacent(tc.input))
			assert.Equal(t, before, tc.input)
		})
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	_, ok := textrange.Union()
	assert.False(t, ok)

	u, ok := textrange.Union(textrange.New(4, 6), textrange.New(1, 2), textrange.New(5, 9))
	assert.True(t, ok)
	assert.Equal(t, textrange.New(1, 9), u)
}

type labeled struct {
	label string
	r     textrange.Range
}

func TestDedupeFunc(t *testing.T) {
	t.Parallel()

	items := []labeled{
		{"bold", textrange.New(0, 10)},
		{"italic", textrange.New(2, 4)},
		{"bold", textrange.New(2, 4)},
	}

	got := textrange.DedupeFunc(items, func(kept, item labeled) bool {
		return kept.label == item.label && kept.r.Contains(item.r)
	})

	assert.Equal(t, items[:2], got)
}

func TestMergeAdjacentFunc(t *testing.T) {
	t.Parallel()

	items := []labeled{
		{"a", textrange.New(0, 3)},
		{"b", textrange.New(3, 5)},
		{"c", textrange.New(6, 8)},
	}

	got := textrange.MergeAdjacentFunc(items, func(prev, next labeled) (labeled, bool) {
		if prev.r.End != next.r.Start {
			return prev, false
		}

		return labeled{prev.label + next.label, textrange.New(prev.r.Start, next.r.End)}, true
	})

	assert.Equal(t, []labeled{
		{"ab", textrange.New(0, 5)},
		{"c", textrange.New(6, 8)},
	}, got)
	assert.Equal(t, "a", items[0].label, "input is not modified")
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a, b textrange.Range
		want int
	}{
		"earlier start first": {a: textrange.New(1, 2), b: textrange.New(3, 4), want: -1},
		"later start last":    {a: textrange.New(3, 4), b: textrange.New(1, 9), want: 1},
		"container first":     {a: textrange.New(1, 9), b: textrange.New(1, 2), want: -1},
		"equal":               {a: textrange.New(1, 2), b: textrange.New(1, 2), want: 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := textrange.Compare(tc.a, tc.b)
			switch {
			case tc.want < 0:
				assert.Negative(t, got)
			case tc.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
