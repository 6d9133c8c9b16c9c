package layout

import "fmt"

// Split is an internal node: exactly two occupied child slots, an
// orientation, and a divider position. A split with one child is illegal
// and collapses immediately (removeSide), so both slots are occupied for
// the whole lifetime of a valid split.
type Split struct {
	orientation Orientation
	position    int // top-left extent out of LayoutBaseSize
	topLeft     Elem
	bottomRight Elem
	container   Container
}

// newSplit splits pane p in the given direction, allocating the new pane
// around surface. The split takes p's former position in the tree; p and
// the new pane become its two children. Direction decides ordering:
// splitting up or left inserts the new pane before p.
//
// Returns ErrSplitTooSmall without touching the tree when p's surface is
// below minCells character cells in the split axis.
func newSplit(p *Pane, dir Direction, surface Surface, minCells int) (*Split, *Pane, error) {
	if p == nil || p.container.IsNone() {
		return nil, nil, fmt.Errorf("layout: split target is not attached")
	}
	if minCells <= 0 {
		minCells = DefaultMinSplitCells
	}
	if p.surface != nil {
		sz := p.surface.Size()
		if dir.Orientation() == Horizontal {
			if sz.ScreenWidth < sz.CellWidth*minCells {
				return nil, nil, ErrSplitTooSmall
			}
		} else {
			if sz.ScreenHeight < sz.CellHeight*minCells {
				return nil, nil, ErrSplitTooSmall
			}
		}
	}

	next := NewPane(surface)
	s := &Split{
		orientation: dir.Orientation(),
		position:    LayoutBaseSize / 2,
	}
	if dir.newPaneSide() == TopLeft {
		s.topLeft = PaneElem(next)
		s.bottomRight = PaneElem(p)
	} else {
		s.topLeft = PaneElem(p)
		s.bottomRight = PaneElem(next)
	}

	// Re-parent: the owner that held p now holds s. replace() rewrites
	// the owning slot and s's container in one step; then both children
	// point at s. After this block the bidirectional invariant holds
	// again.
	owner := p.container
	owner.replace(SplitElem(s))
	s.topLeft.setContainer(SplitContainer(s, TopLeft))
	s.bottomRight.setContainer(SplitContainer(s, BottomRight))

	return s, next, nil
}

func (s *Split) Orientation() Orientation {
	if s == nil {
		return Horizontal
	}
	return s.orientation
}

// Position is the divider position: the top-left child's extent out of
// LayoutBaseSize.
func (s *Split) Position() int {
	if s == nil {
		return 0
	}
	return s.position
}

func (s *Split) Container() Container {
	if s == nil {
		return Container{}
	}
	return s.container
}

func (s *Split) TopLeft() Elem {
	if s == nil {
		return Elem{}
	}
	return s.topLeft
}

func (s *Split) BottomRight() Elem {
	if s == nil {
		return Elem{}
	}
	return s.bottomRight
}

func (s *Split) child(side Side) Elem {
	if s == nil {
		return Elem{}
	}
	if side == TopLeft {
		return s.topLeft
	}
	return s.bottomRight
}

// Widget returns the presentation handle of the split's subtree. The
// presentation layer renders a split as its two child widgets around the
// divider; the tree exposes the top-left widget as the subtree handle.
func (s *Split) Widget() Widget {
	if s == nil {
		return nil
	}
	return s.topLeft.Widget()
}

// replaceChild rewrites one slot to hold e and fixes e's back-reference.
// The divider position is saved and restored around the swap: clearing a
// slot to attach a new widget loses layout state in the presentation
// layer, so the position must survive the exchange.
func (s *Split) replaceChild(side Side, e Elem) {
	if s == nil || e.IsZero() {
		panic("layout: replaceChild on empty slot or elem")
	}
	pos := s.position
	if side == TopLeft {
		s.topLeft = e
	} else {
		s.bottomRight = e
	}
	e.setContainer(SplitContainer(s, side))
	s.position = pos
}

// removeSide collapses the split after the child on the given side has
// been removed. The surviving child is promoted into the split's own slot
// (the tab root if the split was the root), its container rewritten to
// skip the split entirely, and focus transferred to the survivor's deepest
// pane toward the removed side. The removed subtree is not destroyed here;
// the caller owns that.
func (s *Split) removeSide(side Side) {
	if s == nil {
		return
	}
	surviving := s.child(side.other())
	if surviving.IsZero() {
		panic("layout: removeSide with empty surviving slot")
	}

	owner := s.container
	owner.replace(surviving)

	// Detach the dead split so stale back-references can never resolve
	// through it.
	s.topLeft = Elem{}
	s.bottomRight = Elem{}
	s.container = Container{}

	if p := surviving.DeepestPane(side); p != nil {
		p.GrabFocus()
	}
}

// MoveDivider shifts the divider in the given direction, clamped so
// neither side can reach zero extent. Amount is in LayoutBaseSize units.
func (s *Split) MoveDivider(dir Direction, amount int) {
	if s == nil || amount <= 0 {
		return
	}
	delta := amount
	if dir == DirUp || dir == DirLeft {
		delta = -amount
	}
	s.setPosition(s.position + delta)
}

func (s *Split) setPosition(pos int) {
	if pos < dividerMargin {
		pos = dividerMargin
	}
	if pos > LayoutBaseSize-dividerMargin {
		pos = LayoutBaseSize - dividerMargin
	}
	s.position = pos
}
