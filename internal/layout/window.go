package layout

// Window owns an ordered collection of tabs (a notebook) and the
// currently-selected index. A window with zero tabs is closed.
type Window struct {
	tabs          []*Tab
	selected      int
	minSplitCells int
}

// WindowOptions tune per-window policy.
type WindowOptions struct {
	// MinSplitCells is the minimum pane extent, in character cells along
	// the split axis, required to allow a split. Zero means
	// DefaultMinSplitCells.
	MinSplitCells int
}

func NewWindow(opts WindowOptions) *Window {
	cells := opts.MinSplitCells
	if cells <= 0 {
		cells = DefaultMinSplitCells
	}
	return &Window{minSplitCells: cells}
}

// NewTab creates a tab holding a single pane around surface, appends it
// and selects it. The new pane takes the focus cursor.
func (w *Window) NewTab(surface Surface, label string) *Tab {
	if w == nil {
		return nil
	}
	t := &Tab{window: w, label: label}
	p := NewPane(surface)
	t.setRoot(PaneElem(p))
	t.focused = p
	w.tabs = append(w.tabs, t)
	w.selected = len(w.tabs) - 1
	return t
}

func (w *Window) Tabs() []*Tab {
	if w == nil {
		return nil
	}
	return w.tabs
}

func (w *Window) TabCount() int {
	if w == nil {
		return 0
	}
	return len(w.tabs)
}

func (w *Window) SelectedIndex() int {
	if w == nil {
		return -1
	}
	if len(w.tabs) == 0 {
		return -1
	}
	return w.selected
}

// SelectedTab returns the current tab, or nil for a closed window.
func (w *Window) SelectedTab() *Tab {
	if w == nil || len(w.tabs) == 0 {
		return nil
	}
	return w.tabs[w.selected]
}

// Closed reports whether the tab collection has emptied out.
func (w *Window) Closed() bool {
	return w == nil || len(w.tabs) == 0
}

// GotoTab selects the tab at index, restoring its focus cursor. Out of
// range is a no-op.
func (w *Window) GotoTab(index int) bool {
	if w == nil || index < 0 || index >= len(w.tabs) {
		return false
	}
	w.selected = index
	if p := w.tabs[index].FocusedPane(); p != nil {
		p.GrabFocus()
	}
	return true
}

// NextTab cycles forward with wraparound.
func (w *Window) NextTab() bool {
	if w == nil || len(w.tabs) == 0 {
		return false
	}
	return w.GotoTab((w.selected + 1) % len(w.tabs))
}

// PreviousTab cycles backward with wraparound.
func (w *Window) PreviousTab() bool {
	if w == nil || len(w.tabs) == 0 {
		return false
	}
	return w.GotoTab((w.selected + len(w.tabs) - 1) % len(w.tabs))
}

// IndexOf returns the position of t in the tab order, or -1.
func (w *Window) IndexOf(t *Tab) int {
	if w == nil || t == nil {
		return -1
	}
	for i, candidate := range w.tabs {
		if candidate == t {
			return i
		}
	}
	return -1
}

// CloseTab destroys the tab and every pane in it.
func (w *Window) CloseTab(t *Tab) bool {
	if w == nil || w.IndexOf(t) < 0 {
		return false
	}
	t.close()
	return true
}

// TransferTab moves a whole tab to another window (drag-to-detach). The
// tab's tree and every container link inside it are untouched; only the
// window membership changes.
func (w *Window) TransferTab(t *Tab, dst *Window) bool {
	if w == nil || dst == nil || w == dst {
		return false
	}
	idx := w.IndexOf(t)
	if idx < 0 {
		return false
	}
	w.detachTab(idx)
	t.window = dst
	dst.tabs = append(dst.tabs, t)
	dst.selected = len(dst.tabs) - 1
	return true
}

// removeTab drops a closed tab from the order, keeping the selection on a
// live neighbor.
func (w *Window) removeTab(t *Tab) {
	if w == nil {
		return
	}
	idx := w.IndexOf(t)
	if idx < 0 {
		return
	}
	w.detachTab(idx)
	t.window = nil
}

func (w *Window) detachTab(idx int) {
	w.tabs = append(w.tabs[:idx], w.tabs[idx+1:]...)
	if w.selected > idx || w.selected >= len(w.tabs) {
		w.selected--
	}
	if w.selected < 0 {
		w.selected = 0
	}
}
