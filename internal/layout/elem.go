package layout

// Elem is the tagged value stored in a container slot: either a pane or a
// nested split. The zero Elem is empty and only ever observed on a slot
// mid-mutation; public entry points never see one.
type Elem struct {
	pane  *Pane
	split *Split
}

func PaneElem(p *Pane) Elem {
	return Elem{pane: p}
}

func SplitElem(s *Split) Elem {
	return Elem{split: s}
}

func (e Elem) IsZero() bool {
	return e.pane == nil && e.split == nil
}

// Pane returns the pane, or nil if the elem holds a split.
func (e Elem) Pane() *Pane {
	return e.pane
}

// Split returns the split, or nil if the elem holds a pane.
func (e Elem) Split() *Split {
	return e.split
}

// Widget returns the presentation handle for the elem's subtree.
func (e Elem) Widget() Widget {
	switch {
	case e.pane != nil:
		return e.pane.Widget()
	case e.split != nil:
		return e.split.Widget()
	default:
		return nil
	}
}

// GrabFocus moves input focus into the subtree: directly for a pane, to
// the deepest top-left pane for a split.
func (e Elem) GrabFocus() {
	switch {
	case e.pane != nil:
		e.pane.GrabFocus()
	case e.split != nil:
		if p := e.DeepestPane(TopLeft); p != nil {
			p.GrabFocus()
		}
	}
}

// Close recursively destroys the subtree, releasing every pane surface.
func (e Elem) Close() {
	switch {
	case e.pane != nil:
		e.pane.close()
	case e.split != nil:
		e.split.topLeft.Close()
		e.split.bottomRight.Close()
	}
}

// DeepestPane follows the given side until a pane is reached. Used for
// collapse focus transfer and directional lookup.
func (e Elem) DeepestPane(side Side) *Pane {
	switch {
	case e.pane != nil:
		return e.pane
	case e.split != nil:
		return e.split.child(side).DeepestPane(side)
	default:
		return nil
	}
}

// equalize assigns this subtree's dividers proportionally by pane count
// and returns the subtree's total pane count to the caller.
func (e Elem) equalize() int {
	switch {
	case e.pane != nil:
		return 1
	case e.split != nil:
		s := e.split
		tl := s.topLeft.equalize()
		br := s.bottomRight.equalize()
		if tl+br > 0 {
			s.setPosition(LayoutBaseSize * tl / (tl + br))
		}
		return tl + br
	default:
		return 0
	}
}

func (e Elem) setContainer(c Container) {
	switch {
	case e.pane != nil:
		e.pane.container = c
	case e.split != nil:
		e.split.container = c
	}
}

func (e Elem) container() Container {
	switch {
	case e.pane != nil:
		return e.pane.container
	case e.split != nil:
		return e.split.container
	default:
		return Container{}
	}
}

// panes appends the subtree's panes in depth-first top-left-first order.
func (e Elem) panes(out []*Pane) []*Pane {
	switch {
	case e.pane != nil:
		return append(out, e.pane)
	case e.split != nil:
		out = e.split.topLeft.panes(out)
		return e.split.bottomRight.panes(out)
	default:
		return out
	}
}
