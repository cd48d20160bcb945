package engine

import (
	"log/slog"

	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/highlight"
	"go.jacobcolvin.com/jdcr/javadoc"
	"go.jacobcolvin.com/jdcr/textrange"
	"go.jacobcolvin.com/jdcr/vocab"
)

// Comment locates one doc comment in a source file.
type Comment struct {
	Group string          `json:"group" yaml:"group"`
	Range textrange.Range `json:"range" yaml:"range"`
}

// Report is the result of processing one source file. All ranges are byte
// offsets into that file.
type Report struct {
	Comments   []Comment             `json:"comments"   yaml:"comments"`
	Highlights []highlight.Highlight `json:"highlights" yaml:"highlights"`
	Regions    []fold.Region         `json:"regions"    yaml:"regions"`
}

// Engine finds the doc comments of Java sources and computes their
// highlights and fold regions.
//
// Create instances with [New]. An Engine holds no per-source state and is
// safe for concurrent use.
type Engine struct {
	logger    *slog.Logger
	annotator *highlight.Annotator
	builder   *fold.Builder
	vocab     *vocab.Vocabulary
}

// Option configures an [Engine].
type Option func(*Engine)

// WithVocabulary sets the vocabulary. The default is [vocab.Default].
func WithVocabulary(v *vocab.Vocabulary) Option {
	return func(e *Engine) {
		e.vocab = v
	}
}

// WithLogger sets the logger. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New returns an [Engine] configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		vocab:  vocab.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.annotator = highlight.NewAnnotator(
		highlight.WithRules(e.vocab.Rules),
		highlight.WithLogger(e.logger),
	)
	e.builder = fold.NewBuilder(
		fold.WithPlaceholders(e.vocab.Placeholders),
		fold.WithLogger(e.logger),
	)

	return e
}

// Run processes the Java source src.
func (e *Engine) Run(src string) *Report {
	roots := javadoc.Parse(src)

	r := &Report{
		Comments:   make([]Comment, 0, len(roots)),
		Highlights: []highlight.Highlight{},
		Regions:    []fold.Region{},
	}

	for _, root := range roots {
		r.Comments = append(r.Comments, Comment{
			Group: fold.GroupName(root),
			Range: textrange.New(root.Offset, root.End()),
		})
		r.Highlights = append(r.Highlights, e.annotator.Annotate(root)...)
		r.Regions = append(r.Regions, e.builder.Build(root)...)
	}

	e.logger.Debug("processed source",
		slog.Int("bytes", len(src)),
		slog.Int("comments", len(r.Comments)),
		slog.Int("highlights", len(r.Highlights)),
		slog.Int("regions", len(r.Regions)),
	)

	return r
}

// CommentAt returns the comment that intersects the range r.
func (r *Report) CommentAt(rng textrange.Range) (Comment, bool) {
	for _, c := range r.Comments {
		if c.Range.Intersects(rng) {
			return c, true
		}
	}

	return Comment{}, false
}
