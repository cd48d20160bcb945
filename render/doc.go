// Package render draws Java source with its doc comment markup applied:
// highlights become terminal styles and collapsed fold regions become their
// placeholders.
//
// Styles come from [charm.land/lipgloss/v2]. Output is always produced with
// full color and adapted to the terminal by the
// [github.com/charmbracelet/colorprofile] writer returned by
// [Config.Writer].
package render
