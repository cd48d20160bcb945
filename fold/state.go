package fold

import (
	"strings"

	"go.jacobcolvin.com/jdcr/textrange"
)

// State tracks which fold groups are collapsed. Every group starts
// collapsed.
//
// Queries iterate the regions on every call; a document holds few enough
// regions that nothing is cached.
type State struct {
	expanded map[string]bool
	regions  []Region
}

// NewState returns a [State] over regions, which must be sorted by start
// offset as [Builder.Build] returns them.
func NewState(regions []Region) *State {
	return &State{
		regions:  regions,
		expanded: make(map[string]bool),
	}
}

// Regions returns the regions the state was created with.
func (s *State) Regions() []Region {
	return s.regions
}

// Groups returns the names of all groups in document order.
func (s *State) Groups() []string {
	var groups []string

	seen := make(map[string]bool)
	for _, r := range s.regions {
		if !seen[r.Group] {
			seen[r.Group] = true
			groups = append(groups, r.Group)
		}
	}

	return groups
}

// IsCollapsed reports whether group is collapsed.
func (s *State) IsCollapsed(group string) bool {
	return !s.expanded[group]
}

// Toggle flips group between collapsed and expanded.
func (s *State) Toggle(group string) {
	s.expanded[group] = !s.expanded[group]
}

// ToggleAll expands every group if any group is collapsed, and collapses
// every group otherwise.
func (s *State) ToggleAll() {
	expand := false

	for _, g := range s.Groups() {
		if s.IsCollapsed(g) {
			expand = true
			break
		}
	}

	for _, g := range s.Groups() {
		s.expanded[g] = expand
	}
}

// IsFolded reports whether the offset pos is hidden by a collapsed region.
func (s *State) IsFolded(pos int) bool {
	for _, r := range s.regions {
		if s.IsCollapsed(r.Group) && r.Range.ContainsOffset(pos) {
			return true
		}
	}

	return false
}

// GroupAt returns the group of the first region that intersects r, which
// is typically the extent of a line.
func (s *State) GroupAt(r textrange.Range) (string, bool) {
	for _, region := range s.regions {
		if region.Range.Intersects(r) {
			return region.Group, true
		}
	}

	return "", false
}

// Apply returns text with every collapsed region replaced by its
// placeholder. Regions must lie within text; a region starting inside an
// earlier replaced region is skipped.
func (s *State) Apply(text string) string {
	var sb strings.Builder

	pos := 0

	for _, r := range s.regions {
		if !s.IsCollapsed(r.Group) || r.Range.Start < pos || r.Range.End > len(text) {
			continue
		}

		sb.WriteString(text[pos:r.Range.Start])
		sb.WriteString(r.Placeholder)
		pos = r.Range.End
	}

	sb.WriteString(text[pos:])

	return sb.String()
}
