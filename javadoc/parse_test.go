package javadoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jdcr/doctree"
	"go.jacobcolvin.com/jdcr/javadoc"
	"go.jacobcolvin.com/jdcr/stringtest"
)

type token struct {
	Kind doctree.Kind
	Text string
}

func tokens(n *doctree.Node) []token {
	out := make([]token, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, token{Kind: c.Kind, Text: c.Text})
	}

	return out
}

func TestParseComment(t *testing.T) {
	t.Parallel()

	text := "/** a {@link Foo#bar(int, int) label} b\n * c */"
	root := javadoc.ParseComment(text, 7)

	assert.Equal(t, text, root.Text)
	assert.Equal(t, 7, root.Offset)
	assert.Equal(t, []token{
		{doctree.CommentStart, "/**"},
		{doctree.Data, " a "},
		{doctree.InlineTag, "{@link Foo#bar(int, int) label}"},
		{doctree.Data, " b"},
		{doctree.Whitespace, "\n "},
		{doctree.LeadingAsterisks, "*"},
		{doctree.Data, " c "},
		{doctree.CommentEnd, "*/"},
	}, tokens(root))

	link := root.Children[2]
	assert.Equal(t, "link", link.Name)
	assert.Equal(t, 6, link.Offset)
	assert.Equal(t, []token{
		{doctree.InlineTagStart, "{@"},
		{doctree.TagName, "link"},
		{doctree.Whitespace, " "},
		{doctree.Reference, "Foo#bar(int, int)"},
		{doctree.Data, " label"},
		{doctree.InlineTagEnd, "}"},
	}, tokens(link))
}

func TestParseCommentInlineTags(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text string
		want []token
	}{
		"code keeps braces balanced": {
			text: "/**{@code Map<K, V> m = {}}*/",
			want: []token{
				{doctree.InlineTagStart, "{@"},
				{doctree.TagName, "code"},
				{doctree.Data, " Map<K, V> m = {}"},
				{doctree.InlineTagEnd, "}"},
			},
		},
		"tag without body": {
			text: "/**{@inheritDoc}*/",
			want: []token{
				{doctree.InlineTagStart, "{@"},
				{doctree.TagName, "inheritDoc"},
				{doctree.InlineTagEnd, "}"},
			},
		},
		"tag across lines": {
			text: "/**{@code a\n * b}*/",
			want: []token{
				{doctree.InlineTagStart, "{@"},
				{doctree.TagName, "code"},
				{doctree.Data, " a"},
				{doctree.Whitespace, "\n "},
				{doctree.LeadingAsterisks, "*"},
				{doctree.Data, " b"},
				{doctree.InlineTagEnd, "}"},
			},
		},
		"value reference": {
			text: "/**{@value #MAX}*/",
			want: []token{
				{doctree.InlineTagStart, "{@"},
				{doctree.TagName, "value"},
				{doctree.Whitespace, " "},
				{doctree.Reference, "#MAX"},
				{doctree.InlineTagEnd, "}"},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := javadoc.ParseComment(tc.text, 0)
			require.Len(t, root.Children, 3)

			tag := root.Children[1]
			assert.Equal(t, doctree.InlineTag, tag.Kind)
			assert.Equal(t, tc.want, tokens(tag))
		})
	}
}

func TestParseCommentUnterminatedInlineTag(t *testing.T) {
	t.Parallel()

	root := javadoc.ParseComment("/** {@code x\n */", 0)

	assert.Equal(t, []token{
		{doctree.CommentStart, "/**"},
		{doctree.Data, " {@code x"},
		{doctree.Whitespace, "\n "},
		{doctree.CommentEnd, "*/"},
	}, tokens(root))
}

func TestParseCommentEmpty(t *testing.T) {
	t.Parallel()

	root := javadoc.ParseComment("/***/", 0)

	assert.Equal(t, []token{
		{doctree.CommentStart, "/**"},
		{doctree.CommentEnd, "*/"},
	}, tokens(root))
}

func TestParse(t *testing.T) {
	t.Parallel()

	src := stringtest.Input(`
		package x;

		/** First. */
		class A {
		  String s = "/** not a comment */";
		  char c = '"';
		  // /** nor this
		  /* /** nor this */
		  /**/
		  String t = """
		    /** text block */
		    """;

		  /**
		   * Second.
		   */
		  void m() {}
		}
	`)

	got := javadoc.Parse(src)
	require.Len(t, got, 2)

	for _, c := range got {
		assert.Equal(t, c.Text, src[c.Offset:c.Offset+len(c.Text)])
	}

	assert.Equal(t, "/** First. */", got[0].Text)
	assert.Equal(t, "/**\n   * Second.\n   */", got[1].Text)
}

func TestParseUnterminated(t *testing.T) {
	t.Parallel()

	got := javadoc.Parse("/** one */ class A {} /** two")

	require.Len(t, got, 1)
	assert.Equal(t, "/** one */", got[0].Text)
}
