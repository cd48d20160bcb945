package render

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/highlight"
	"go.jacobcolvin.com/jdcr/textrange"
)

// Theme maps highlight styles to terminal styles.
type Theme struct {
	Styles      map[highlight.Style]lipgloss.Style
	Placeholder lipgloss.Style
}

// DefaultTheme uses the basic ANSI palette so it follows the terminal's
// color scheme.
func DefaultTheme() Theme {
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return Theme{
		Styles: map[highlight.Style]lipgloss.Style{
			highlight.StyleBold:     base.Bold(true),
			highlight.StyleItalic:   base.Italic(true),
			highlight.StyleCode:     base.Foreground(lipgloss.Color("2")),
			highlight.StyleLink:     base.Foreground(lipgloss.Color("4")).Underline(true),
			highlight.StyleHTMLLink: base.Foreground(lipgloss.Color("6")).Underline(true),
			highlight.StyleMarkup:   base.Faint(true),
		},
		Placeholder: base.Faint(true),
	}
}

// Renderer paints highlights onto source text and collapses folded
// regions.
//
// Create instances with [NewRenderer].
type Renderer struct {
	theme Theme
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithTheme replaces [DefaultTheme].
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// NewRenderer returns a [Renderer] configured by opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render returns src with highlights styled and the collapsed regions of
// state replaced by their placeholders. A nil state folds nothing.
//
// The result always carries escape sequences; write it through the writer
// from [Config.Writer] to adapt them to the terminal.
func (r *Renderer) Render(src string, hs []highlight.Highlight, state *fold.State) string {
	return r.RenderRange(src, hs, state, textrange.New(0, len(src)))
}

// RenderRange is [Render] limited to rng of src, such as one line. A
// collapsed region that starts inside rng shows its placeholder; the parts
// of collapsed regions that fall inside rng are hidden.
func (r *Renderer) RenderRange(src string, hs []highlight.Highlight, state *fold.State, rng textrange.Range) string {
	cuts := []int{rng.Start, rng.End}
	for _, h := range hs {
		cuts = append(cuts, h.Range.Start, h.Range.End)
	}

	var folded []fold.Region

	if state != nil {
		for _, reg := range state.Regions() {
			if state.IsCollapsed(reg.Group) {
				folded = append(folded, reg)
				cuts = append(cuts, reg.Range.Start, reg.Range.End)
			}
		}
	}

	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var sb strings.Builder

	for i := 0; i+1 < len(cuts); i++ {
		seg := textrange.New(cuts[i], cuts[i+1])
		if seg.Start < rng.Start || seg.End > rng.End || seg.End > len(src) {
			continue
		}

		if reg, ok := regionAt(folded, seg.Start); ok {
			if reg.Range.Start == seg.Start && reg.Placeholder != "" {
				sb.WriteString(renderLines(r.theme.Placeholder, reg.Placeholder))
			}

			continue
		}

		sb.WriteString(r.paint(seg.Substring(src), stylesOver(hs, seg)))
	}

	return sb.String()
}

// paint renders text with the combination of styles.
func (r *Renderer) paint(text string, styles []highlight.Style) string {
	if len(styles) == 0 || text == "" {
		return text
	}

	combined := lipgloss.NewStyle()
	for _, s := range styles {
		combined = combined.Inherit(r.theme.Styles[s])
	}

	return renderLines(combined, text)
}

// renderLines renders each line of text on its own, so the style never
// pads lines to a common width.
func renderLines(st lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func regionAt(regions []fold.Region, pos int) (fold.Region, bool) {
	for _, reg := range regions {
		if reg.Range.ContainsOffset(pos) {
			return reg, true
		}
	}

	return fold.Region{}, false
}

func stylesOver(hs []highlight.Highlight, seg textrange.Range) []highlight.Style {
	var styles []highlight.Style

	for _, h := range hs {
		if h.Range.Contains(seg) && !slices.Contains(styles, h.Style) {
			styles = append(styles, h.Style)
		}
	}

	return styles
}
