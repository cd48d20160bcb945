package doctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jdcr/doctree"
	"go.jacobcolvin.com/jdcr/textrange"
)

func TestExcludeLineBreaks(t *testing.T) {
	t.Parallel()

	// "/** <b>bold\n * text</b> {@code x}\n */"
	root := sample()

	tcs := map[string]struct {
		input textrange.Range
		want  []textrange.Range
	}{
		"range without line break": {
			input: textrange.New(7, 11),
			want:  []textrange.Range{textrange.New(7, 11)},
		},
		"range across one line break": {
			input: textrange.New(7, 19),
			want:  []textrange.Range{textrange.New(7, 11), textrange.New(15, 19)},
		},
		"range starting at the line break": {
			input: textrange.New(11, 19),
			want:  []textrange.Range{textrange.New(15, 19)},
		},
		"range ending inside decoration": {
			input: textrange.New(7, 14),
			want:  []textrange.Range{textrange.New(7, 11)},
		},
		"final break before closer is not a line decoration": {
			input: textrange.New(24, 37),
			want:  []textrange.Range{textrange.New(24, 37)},
		},
		"empty range": {
			input: textrange.New(5, 5),
			want:  nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, doctree.ExcludeLineBreaks(root, tc.input))
		})
	}
}

func TestExcludeLineBreaksKeepsSecondSpace(t *testing.T) {
	t.Parallel()

	root := doctree.NewParent(doctree.Comment, "", 0,
		doctree.Leaf(doctree.Data, "ab"),
		doctree.Leaf(doctree.Whitespace, "\n   "),
		doctree.Leaf(doctree.LeadingAsterisks, "*"),
		doctree.Leaf(doctree.Data, "  cd"),
	)

	got := doctree.ExcludeLineBreaks(root, textrange.New(0, len(root.Text)))

	assert.Equal(t, []textrange.Range{textrange.New(0, 2), textrange.New(8, 11)}, got)
	assert.Equal(t, "ab cd", root.Join(got))
}

func TestTrimDecorationSpace(t *testing.T) {
	t.Parallel()

	// "/** <b>bold\n * text</b> {@code x}\n */"
	root := sample()

	tcs := map[string]struct {
		input textrange.Range
		want  textrange.Range
	}{
		"space after asterisks": {
			input: textrange.New(14, 19),
			want:  textrange.New(15, 19),
		},
		"space after comment start": {
			input: textrange.New(3, 7),
			want:  textrange.New(3, 7),
		},
		"no leading space": {
			input: textrange.New(15, 19),
			want:  textrange.New(15, 19),
		},
		"empty range": {
			input: textrange.New(14, 14),
			want:  textrange.New(14, 14),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, doctree.TrimDecorationSpace(root, tc.input))
		})
	}
}
