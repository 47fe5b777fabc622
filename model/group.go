package model

// Layout describes how a figure group's members are rendered.
type Layout string

const (
	// LayoutRow renders images side by side
	LayoutRow Layout = "row"

	// LayoutColumn renders images stacked vertically
	LayoutColumn Layout = "column"
)

// FigureGroup is a set of images that render together as one visual unit.
// Members are in document order. Title and Credit are populated by the
// attribution stage after grouping; membership and layout never change
// afterward.
type FigureGroup struct {
	// ID is the sequential group identifier (grp_0001, grp_0002, ...)
	// assigned in document order
	ID string

	// Layout is row or column
	Layout Layout

	// Members are the group's images, strictly increasing by
	// (BlockPosition, IndexInBlock)
	Members []ImageRef

	// Title is the caption assigned to the first member. Empty when no
	// candidate was found.
	Title string

	// Credit is the attribution text assigned to the last member, with
	// the source prefix stripped. Empty when no candidate was found.
	Credit string
}

// First returns the group's first member.
func (g *FigureGroup) First() ImageRef {
	return g.Members[0]
}

// Last returns the group's last member.
func (g *FigureGroup) Last() ImageRef {
	return g.Members[len(g.Members)-1]
}

// ReasoningEntry records the human-readable justification for one
// grouping decision. Entries are append-only, in decision order.
type ReasoningEntry struct {
	// GroupID is the final ID of the group the decision produced
	GroupID string

	// Message explains which conditions triggered inclusion or exclusion
	Message string
}
