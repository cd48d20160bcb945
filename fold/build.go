package fold

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"go.jacobcolvin.com/jdcr/doctree"
	"go.jacobcolvin.com/jdcr/markup"
	"go.jacobcolvin.com/jdcr/stitch"
	"go.jacobcolvin.com/jdcr/textrange"
)

// Region is a range of a document that collapses to Placeholder.
type Region struct {
	Placeholder string          `json:"placeholder" yaml:"placeholder"`
	Group       string          `json:"group"       yaml:"group"`
	Range       textrange.Range `json:"range"       yaml:"range"`
}

// Placeholder replaces an HTML tag whose text contains Match, compared
// case-insensitively with whitespace removed, by Text.
type Placeholder struct {
	Match string
	Text  string
}

// DefaultPlaceholders shows list items as dashes. Every other tag folds to
// nothing.
func DefaultPlaceholders() []Placeholder {
	return []Placeholder{{Match: "<li>", Text: " - "}}
}

// GroupName names the fold group of a doc comment. All regions of one
// comment share a group, so they expand and collapse together.
func GroupName(root *doctree.Node) string {
	return fmt.Sprintf("comment@%d", root.Offset)
}

// Builder computes fold regions for doc comment trees.
//
// Create instances with [NewBuilder].
type Builder struct {
	logger       *slog.Logger
	placeholders []Placeholder
}

// Option configures a [Builder].
type Option func(*Builder)

// WithPlaceholders replaces [DefaultPlaceholders].
func WithPlaceholders(p []Placeholder) Option {
	return func(b *Builder) {
		b.placeholders = p
	}
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder returns a [Builder] using [DefaultPlaceholders] unless
// overridden by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		placeholders: DefaultPlaceholders(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build returns the fold regions of the doc comment root in the coordinates
// of root's document, sorted by start offset.
//
// Every HTML tag folds, as does every entity reference that unescapes to
// something else. Tags split over comment lines fold piece by piece,
// skipping the line decoration. {@code x} and {@literal x} fold down to x;
// {@link ref label} and {@linkplain ref label} fold down to ref. Regions
// contained in another region are dropped, and regions that touch are
// merged with their placeholders concatenated.
func (b *Builder) Build(root *doctree.Node) []Region {
	var regions []Region

	group := GroupName(root)
	add := func(placeholder string, base int, ranges ...textrange.Range) {
		for _, r := range ranges {
			if !r.IsEmpty() {
				regions = append(regions, Region{Range: r.Shift(base), Placeholder: placeholder, Group: group})
			}
		}
	}

	doctree.Walk(root, func(parent *doctree.Node, i, base int) bool {
		n := parent.Children[i]

		switch n.Kind {
		case doctree.InlineTag:
			switch n.Name {
			case "code", "literal":
				add("", base+n.Offset, delimiters(n)...)
				return false

			case "link", "linkplain":
				add("", base+n.Offset, delimiters(n)...)
				add("", base+n.Offset, label(n)...)
			}

		case doctree.Data:
			for _, r := range markup.HTMLTags(n.Text) {
				add(b.placeholder(r.Substring(n.Text)), base+n.Offset, r)
			}

			for _, r := range markup.EntityRefs(n.Text) {
				ref := r.Substring(n.Text)
				if text := html.UnescapeString(ref); text != ref {
					add(text, base+n.Offset, r)
				}
			}

			if pieces := stitch.MultiLineTagRanges(parent, i); len(pieces) > 0 {
				add(b.placeholder(parent.Join(pieces)), base, pieces[0])
				add("", base, pieces[1:]...)
			}

		default:
		}

		return true
	})

	regions = normalize(regions)

	b.logger.Debug("folded comment",
		slog.String("group", group),
		slog.Int("regions", len(regions)),
	)

	return regions
}

// BuildAll builds the regions of every comment in roots, in document
// order.
func (b *Builder) BuildAll(roots []*doctree.Node) []Region {
	var out []Region
	for _, root := range roots {
		out = append(out, b.Build(root)...)
	}

	return out
}

func (b *Builder) placeholder(tag string) string {
	norm := strings.ToLower(markup.StripSpace(tag))
	for _, p := range b.placeholders {
		if strings.Contains(norm, strings.ToLower(markup.StripSpace(p.Match))) {
			return p.Text
		}
	}

	return ""
}

// normalize sorts regions, drops the contained ones, and merges the ones
// that touch.
func normalize(regions []Region) []Region {
	slices.SortStableFunc(regions, func(a, b Region) int {
		return textrange.Compare(a.Range, b.Range)
	})

	regions = textrange.DedupeFunc(regions, func(kept, r Region) bool {
		return kept.Range.Contains(r.Range)
	})

	return textrange.MergeAdjacentFunc(regions, func(prev, next Region) (Region, bool) {
		if prev.Group != next.Group || prev.Range.End != next.Range.Start {
			return prev, false
		}

		prev.Range = textrange.New(prev.Range.Start, next.Range.End)
		prev.Placeholder += next.Placeholder

		return prev, true
	})
}

// delimiters returns the "{@name " opener and the "}" closer of an inline
// tag, in the tag's coordinates.
func delimiters(tag *doctree.Node) []textrange.Range {
	var out []textrange.Range

	for i, c := range tag.Children {
		switch c.Kind {
		case doctree.TagName:
			end := c.End()
			if next := tag.Child(i + 1); next != nil && next.Kind == doctree.Whitespace {
				end++
			}

			out = append(out, textrange.New(0, end))

		case doctree.InlineTagEnd:
			out = append(out, c.Range())

		default:
		}
	}

	return out
}

// label returns the text between the reference and the closer of a link
// tag, without line decoration, in the tag's coordinates.
func label(tag *doctree.Node) []textrange.Range {
	var start, end int

	for _, c := range tag.Children {
		switch c.Kind {
		case doctree.Reference:
			start = c.End()
		case doctree.InlineTagEnd:
			end = c.Offset
		default:
		}
	}

	if start == 0 || end <= start {
		return nil
	}

	return doctree.ExcludeLineBreaks(tag, textrange.New(start, end))
}
