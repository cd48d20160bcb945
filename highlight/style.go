package highlight

import (
	"errors"
	"fmt"
	"strings"

	"go.jacobcolvin.com/jdcr/markup"
)

// ErrUnknownStyle indicates an unrecognized style name.
var ErrUnknownStyle = errors.New("unknown style")

// Style is the visual treatment of a highlighted range.
type Style string

const (
	// StyleBold renders text bold.
	StyleBold Style = "bold"
	// StyleItalic renders text italic.
	StyleItalic Style = "italic"
	// StyleCode renders text as code.
	StyleCode Style = "code"
	// StyleLink renders a program element reference.
	StyleLink Style = "link"
	// StyleHTMLLink renders the text of an HTML anchor.
	StyleHTMLLink Style = "html-link"
	// StyleMarkup renders an HTML tag that spans several comment lines.
	StyleMarkup Style = "markup"
)

var allStyles = []Style{StyleBold, StyleItalic, StyleCode, StyleLink, StyleHTMLLink, StyleMarkup}

// AllStyles returns every [Style].
func AllStyles() []Style {
	return append([]Style(nil), allStyles...)
}

// ParseStyle returns the [Style] named by s, case-insensitively.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(s))
	for _, known := range allStyles {
		if style == known {
			return style, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Rule styles the values of one tag.
type Rule struct {
	Tag   markup.Tag
	Style Style
}

// DefaultRules styles the tags of [markup.DefaultVocabulary]. List items
// carry no style.
func DefaultRules() []Rule {
	styles := map[string]Style{
		markup.TagBold:       StyleBold,
		markup.TagItalic:     StyleItalic,
		markup.TagEmphasis:   StyleItalic,
		markup.TagCode:       StyleCode,
		markup.TagTeletype:   StyleCode,
		markup.TagPre:        StyleCode,
		markup.TagAnchorHref: StyleHTMLLink,
		markup.TagAnchorName: StyleBold,
	}

	var rules []Rule

	for _, tag := range markup.DefaultVocabulary() {
		if style, ok := styles[tag.Name()]; ok {
			rules = append(rules, Rule{Tag: tag, Style: style})
		}
	}

	return rules
}
