// Package layout implements the pane-composition tree of a terminal
// multiplexer: panes arranged into a binary tree of splits, nested inside
// tabs, nested inside windows. The tree is mutated only from the UI event
// loop; there is no locking because there is no concurrent mutator.
package layout

// LayoutBaseSize is the virtual extent of a tab in both axes. Divider
// positions and pane rectangles are expressed in this space and scaled to
// real cells by the presentation layer.
const LayoutBaseSize = 1000

// dividerMargin is the closest a divider may come to either edge of its
// split, so a pane can never be resized to zero.
const dividerMargin = 50

// DefaultMinSplitCells is the minimum pane extent, in character cells along
// the split axis, required to allow a further split.
const DefaultMinSplitCells = 4

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Side identifies one of the two child slots of a Split. TopLeft precedes
// BottomRight in the canonical depth-first pane order.
type Side int

const (
	TopLeft Side = iota
	BottomRight
)

func (s Side) other() Side {
	if s == TopLeft {
		return BottomRight
	}
	return TopLeft
}

func (s Side) String() string {
	switch s {
	case TopLeft:
		return "top-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Direction names a user-facing compass or cycle direction for split,
// goto and resize actions.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	DirNext
	DirPrevious
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirNext:
		return "next"
	case DirPrevious:
		return "previous"
	default:
		return "unknown"
	}
}

// Orientation maps a compass direction to the split orientation it implies.
func (d Direction) Orientation() Orientation {
	switch d {
	case DirUp, DirDown:
		return Vertical
	default:
		return Horizontal
	}
}

// newPaneSide reports which slot the newly created pane occupies when
// splitting in this direction: splitting up or left inserts the new pane
// before the sibling, down or right inserts it after.
func (d Direction) newPaneSide() Side {
	switch d {
	case DirLeft, DirUp:
		return TopLeft
	default:
		return BottomRight
	}
}

// Rect is a pane rectangle in the LayoutBaseSize coordinate space.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
