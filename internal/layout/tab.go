package layout

// Tab owns exactly one root elem (a pane or a split) and a focus cursor:
// the last-focused pane, used to restore focus when the tab regains
// selection. Zoom state also lives here because it is mutually exclusive
// per tab.
type Tab struct {
	window  *Window
	root    Elem
	focused *Pane
	zoomed  *Pane
	label   string
	tooltip string
}

// Root returns the tab's root elem.
func (t *Tab) Root() Elem {
	if t == nil {
		return Elem{}
	}
	return t.root
}

func (t *Tab) Window() *Window {
	if t == nil {
		return nil
	}
	return t.window
}

func (t *Tab) Label() string {
	if t == nil {
		return ""
	}
	return t.label
}

func (t *Tab) SetLabel(label string) {
	if t == nil {
		return
	}
	t.label = label
}

func (t *Tab) Tooltip() string {
	if t == nil {
		return ""
	}
	return t.tooltip
}

func (t *Tab) SetTooltip(tooltip string) {
	if t == nil {
		return
	}
	t.tooltip = tooltip
}

// FocusedPane returns the tab's focus cursor, falling back to the deepest
// top-left pane when no focus has been recorded yet.
func (t *Tab) FocusedPane() *Pane {
	if t == nil {
		return nil
	}
	if t.focused != nil && t.focused.Tab() == t {
		return t.focused
	}
	return t.root.DeepestPane(TopLeft)
}

// Zoomed returns the pane currently filling the tab, or nil.
func (t *Tab) Zoomed() *Pane {
	if t == nil {
		return nil
	}
	return t.zoomed
}

// toggleZoom flips zoom for p. Zoom is a presentation-only overlay: the
// tree topology is untouched, and activating zoom on a second pane first
// deactivates the existing one.
func (t *Tab) toggleZoom(p *Pane) {
	if t == nil || p == nil {
		return
	}
	if t.zoomed == p {
		t.zoomed = nil
		return
	}
	t.zoomed = p
}

// Equalize redistributes every divider in the tab proportionally by pane
// count and returns the total number of panes.
func (t *Tab) Equalize() int {
	if t == nil {
		return 0
	}
	return t.root.equalize()
}

// Panes lists the tab's panes in depth-first top-left-first order.
func (t *Tab) Panes() []*Pane {
	if t == nil {
		return nil
	}
	return t.root.panes(nil)
}

// Rects resolves every visible pane to a rectangle in the LayoutBaseSize
// square. With a zoomed pane the map holds that pane alone, filling the
// tab.
func (t *Tab) Rects() map[*Pane]Rect {
	out := make(map[*Pane]Rect)
	if t == nil || t.root.IsZero() {
		return out
	}
	full := Rect{X: 0, Y: 0, W: LayoutBaseSize, H: LayoutBaseSize}
	if t.zoomed != nil && t.zoomed.Tab() == t {
		out[t.zoomed] = full
		return out
	}
	rectsForElem(t.root, full, out)
	return out
}

func rectsForElem(e Elem, rect Rect, out map[*Pane]Rect) {
	if rect.Empty() {
		return
	}
	if p := e.Pane(); p != nil {
		out[p] = rect
		return
	}
	s := e.Split()
	if s == nil {
		return
	}
	if s.orientation == Horizontal {
		tlW := rect.W * s.position / LayoutBaseSize
		rectsForElem(s.topLeft, Rect{X: rect.X, Y: rect.Y, W: tlW, H: rect.H}, out)
		rectsForElem(s.bottomRight, Rect{X: rect.X + tlW, Y: rect.Y, W: rect.W - tlW, H: rect.H}, out)
		return
	}
	tlH := rect.H * s.position / LayoutBaseSize
	rectsForElem(s.topLeft, Rect{X: rect.X, Y: rect.Y, W: rect.W, H: tlH}, out)
	rectsForElem(s.bottomRight, Rect{X: rect.X, Y: rect.Y + tlH, W: rect.W, H: rect.H - tlH}, out)
}

// setRoot installs e as the tab root and fixes its back-reference.
func (t *Tab) setRoot(e Elem) {
	if t == nil {
		return
	}
	t.root = e
	e.setContainer(TabContainer(t))
}

// removePane handles the removal path for one pane: collapse its parent
// split, or close the whole tab when the pane is the root. Zoom and the
// focus cursor are cleared first so neither can dangle. The pane's
// surface is released after the tree mutation commits.
func (t *Tab) removePane(p *Pane) {
	if t == nil || p == nil {
		return
	}
	if t.zoomed == p {
		t.zoomed = nil
	}
	if t.focused == p {
		t.focused = nil
	}

	s := p.container.Split()
	if s == nil {
		// Last pane in the tab.
		t.close()
		return
	}
	side, _ := p.container.Side()
	s.removeSide(side)
	p.close()
}

// close destroys the tab's whole subtree and detaches the tab from its
// window.
func (t *Tab) close() {
	if t == nil {
		return
	}
	root := t.root
	t.root = Elem{}
	t.zoomed = nil
	t.focused = nil
	root.Close()
	if t.window != nil {
		t.window.removeTab(t)
	}
}
