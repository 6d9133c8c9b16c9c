package layout

// Pane is a leaf of the tree: one terminal surface plus the back-reference
// to wherever it currently lives. A pane has exactly one owner (a tab root
// or a split slot) at any time.
type Pane struct {
	surface   Surface
	container Container
}

// NewPane wraps a surface. The pane starts detached; it becomes live when
// a tab or split takes ownership.
func NewPane(surface Surface) *Pane {
	return &Pane{surface: surface}
}

func (p *Pane) Surface() Surface {
	if p == nil {
		return nil
	}
	return p.surface
}

func (p *Pane) Widget() Widget {
	if p == nil || p.surface == nil {
		return nil
	}
	return p.surface.Widget()
}

func (p *Pane) Container() Container {
	if p == nil {
		return Container{}
	}
	return p.container
}

// Window resolves the owning window, or nil while detached.
func (p *Pane) Window() *Window {
	return p.Container().Window()
}

// Tab resolves the owning tab, or nil while detached.
func (p *Pane) Tab() *Tab {
	return p.Container().Tab()
}

// GrabFocus gives the surface input focus and records the pane as its
// tab's focus cursor, so the tab can restore focus when it regains
// selection.
func (p *Pane) GrabFocus() {
	if p == nil {
		return
	}
	if t := p.Tab(); t != nil {
		t.focused = p
	}
	if p.surface != nil {
		p.surface.Focus()
	}
}

// Zoomed reports whether this pane currently fills its tab.
func (p *Pane) Zoomed() bool {
	t := p.Tab()
	return t != nil && t.zoomed == p
}

// close releases the surface. The tree mutation that removed the pane must
// have committed first, so a failing surface can never leave the tree
// inconsistent.
func (p *Pane) close() {
	if p == nil {
		return
	}
	p.container = Container{}
	if p.surface != nil {
		_ = p.surface.Close()
	}
}
