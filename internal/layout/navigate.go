package layout

// Next returns the pane after p in the canonical depth-first order (a
// split's top-left subtree precedes its bottom-right subtree), wrapping to
// the first pane of the tab after the last. The second result reports
// whether the walk wrapped, so callers can distinguish "genuinely
// adjacent" from "wrapped around". A detached pane yields (nil, false).
func Next(p *Pane) (*Pane, bool) {
	return neighbor(p, TopLeft)
}

// Previous is the mirror of Next: bottom-right-first order in the
// top-left direction, wrapping to the last pane of the tab.
func Previous(p *Pane) (*Pane, bool) {
	return neighbor(p, BottomRight)
}

// neighbor walks upward from p until it finds an ancestor split with an
// unconsumed slot on the far side (the opposite of first), then descends
// that sibling subtree following first. If no ancestor has one, the walk
// wraps to the extreme pane of the whole tab on the first side.
func neighbor(p *Pane, first Side) (*Pane, bool) {
	if p == nil || p.container.IsNone() {
		return nil, false
	}
	c := p.container
	for {
		s := c.Split()
		if s == nil {
			break
		}
		side, _ := c.Side()
		if side == first {
			return s.child(first.other()).DeepestPane(first), false
		}
		c = s.container
	}
	t := c.Tab()
	if t == nil {
		return nil, false
	}
	return t.root.DeepestPane(first), true
}

// paneInDirection resolves a coarse compass query from p. An unwrapped
// next neighbor lies to the bottom and the right; an unwrapped previous
// neighbor lies to the top and the left (matching the common 2x2 split
// layout). A wrapped result does not satisfy a directional query.
func paneInDirection(p *Pane, dir Direction) *Pane {
	switch dir {
	case DirNext:
		q, _ := Next(p)
		return q
	case DirPrevious:
		q, _ := Previous(p)
		return q
	case DirDown, DirRight:
		if q, wrapped := Next(p); !wrapped {
			return q
		}
	case DirUp, DirLeft:
		if q, wrapped := Previous(p); !wrapped {
			return q
		}
	}
	return nil
}
