package layout

import "log/slog"

// Action entry points, one per user-visible action. Each takes the
// currently-focused pane as target. A detached target (container none) is
// a logged no-op, never an error: the pane may be mid-construction or
// already closing when the keybinding fires.

// NewSplit splits the target pane in the given direction around a fresh
// surface and focuses the new pane. Returns the new pane, or
// ErrSplitTooSmall when the target is below the minimum extent in the
// split axis.
func NewSplit(target *Pane, dir Direction, surface Surface) (*Pane, error) {
	if target == nil || target.Container().IsNone() {
		slog.Info("layout: split ignored, target not attached")
		return nil, nil
	}
	minCells := DefaultMinSplitCells
	if w := target.Window(); w != nil {
		minCells = w.minSplitCells
	}
	_, next, err := newSplit(target, dir, surface, minCells)
	if err != nil {
		return nil, err
	}
	next.GrabFocus()
	return next, nil
}

// EqualizeSplits redistributes all dividers in the target's tab
// proportionally by pane count.
func EqualizeSplits(target *Pane) bool {
	t := paneTab(target, "equalize")
	if t == nil {
		return false
	}
	t.Equalize()
	return true
}

// GotoSplit moves focus to the pane in the given direction, if any.
func GotoSplit(target *Pane, dir Direction) bool {
	if target == nil || target.Container().IsNone() {
		slog.Info("layout: goto ignored, target not attached")
		return false
	}
	p := paneInDirection(target, dir)
	if p == nil || p == target {
		return false
	}
	p.GrabFocus()
	return true
}

// ResizeSplit moves the divider of the nearest enclosing split whose
// orientation matches the direction.
func ResizeSplit(target *Pane, dir Direction, amount int) bool {
	if target == nil || target.Container().IsNone() {
		slog.Info("layout: resize ignored, target not attached")
		return false
	}
	s := target.Container().FirstSplitWithOrientation(dir.Orientation())
	if s == nil {
		return false
	}
	s.MoveDivider(dir, amount)
	return true
}

// ToggleSplitZoom flips the zoom overlay for the target pane within its
// tab. Toggling twice restores the exact prior state; the tree topology
// is never touched.
func ToggleSplitZoom(target *Pane) bool {
	t := paneTab(target, "zoom")
	if t == nil {
		return false
	}
	t.toggleZoom(target)
	return true
}

// ClosePane removes the target pane: its parent split collapses to the
// sibling, or the whole tab closes when the pane is the last one. This is
// the removal path for both process exit and user-confirmed close.
func ClosePane(target *Pane) bool {
	t := paneTab(target, "close")
	if t == nil {
		return false
	}
	t.removePane(target)
	return true
}

func paneTab(target *Pane, action string) *Tab {
	if target == nil || target.Container().IsNone() {
		slog.Info("layout: action ignored, target not attached", slog.String("action", action))
		return nil
	}
	t := target.Tab()
	if t == nil {
		slog.Info("layout: action ignored, no enclosing tab", slog.String("action", action))
	}
	return t
}
