package highlight

import (
	"log/slog"
	"slices"

	"go.jacobcolvin.com/jdcr/doctree"
	"go.jacobcolvin.com/jdcr/stitch"
	"go.jacobcolvin.com/jdcr/textrange"
)

// Highlight is a styled range of a document.
type Highlight struct {
	// Tag names the markup tag the range is a value of. It is empty for
	// inline tag parts and multi-line markup.
	Tag   string          `json:"tag,omitempty" yaml:"tag,omitempty"`
	Style Style           `json:"style"         yaml:"style"`
	Range textrange.Range `json:"range"         yaml:"range"`
}

// Annotator computes highlights for doc comment trees.
//
// Create instances with [NewAnnotator].
type Annotator struct {
	logger *slog.Logger
	rules  []Rule
}

// Option configures an [Annotator].
type Option func(*Annotator)

// WithRules replaces [DefaultRules].
func WithRules(rules []Rule) Option {
	return func(a *Annotator) {
		a.rules = rules
	}
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		a.logger = logger
	}
}

// NewAnnotator returns an [Annotator] using [DefaultRules] unless
// overridden by opts.
func NewAnnotator(opts ...Option) *Annotator {
	a := &Annotator{
		rules:  DefaultRules(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Annotate returns the highlights of the doc comment root, ordered by start
// offset, in the coordinates of root's document.
//
// Tag values are styled by the annotator's rules, multi-line HTML tags get
// [StyleMarkup], the content of {@code} gets [StyleCode], and the reference
// of {@link}, {@linkplain} and {@value} gets [StyleLink]. Nothing inside
// {@code} or {@literal} is scanned for markup. A range contained in another
// range of the same style is dropped.
func (a *Annotator) Annotate(root *doctree.Node) []Highlight {
	var out []Highlight

	add := func(style Style, tag string, base int, ranges ...textrange.Range) {
		for _, r := range ranges {
			if !r.IsEmpty() {
				out = append(out, Highlight{Range: r.Shift(base), Style: style, Tag: tag})
			}
		}
	}

	doctree.Walk(root, func(parent *doctree.Node, i, base int) bool {
		n := parent.Children[i]

		switch n.Kind {
		case doctree.InlineTag:
			if n.IsLiteral() {
				if n.Name == "code" {
					for _, c := range n.Children {
						if c.Kind == doctree.Data {
							add(StyleCode, "", base+n.Offset, c.Range())
						}
					}
				}

				return false
			}

		case doctree.Reference:
			if parent.Kind == doctree.InlineTag && isReferenceTag(parent.Name) {
				add(StyleLink, "", base, n.Range())
			}

		case doctree.Data:
			for _, rule := range a.rules {
				add(rule.Style, rule.Tag.Name(), base, stitch.TagValues(parent, i, rule.Tag)...)
			}

			add(StyleMarkup, "", base, stitch.MultiLineTagRanges(parent, i)...)

		default:
		}

		return true
	})

	slices.SortStableFunc(out, func(a, b Highlight) int {
		return textrange.Compare(a.Range, b.Range)
	})

	out = textrange.DedupeFunc(out, func(kept, h Highlight) bool {
		return kept.Style == h.Style && kept.Range.Contains(h.Range)
	})

	a.logger.Debug("annotated comment",
		slog.Int("offset", root.Offset),
		slog.Int("highlights", len(out)),
	)

	return out
}

// AnnotateAll annotates every comment in roots and returns the highlights
// in document order.
func (a *Annotator) AnnotateAll(roots []*doctree.Node) []Highlight {
	var out []Highlight
	for _, root := range roots {
		out = append(out, a.Annotate(root)...)
	}

	return out
}

func isReferenceTag(name string) bool {
	return name == "link" || name == "linkplain" || name == "value"
}
