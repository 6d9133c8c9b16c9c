package layout

import (
	"errors"
	"testing"
)

func TestSplitRightOrdering(t *testing.T) {
	w, tab, p := newTestWindow(t)
	next := mustSplit(t, p, DirRight, "p1")

	s := tab.Root().Split()
	if s == nil {
		t.Fatalf("tab root is not a split after NewSplit")
	}
	if s.Orientation() != Horizontal {
		t.Fatalf("orientation = %v, want horizontal", s.Orientation())
	}
	if s.TopLeft().Pane() != p || s.BottomRight().Pane() != next {
		t.Fatalf("split right must keep sibling top-left: TL=%s BR=%s",
			surfaceName(s.TopLeft().Pane()), surfaceName(s.BottomRight().Pane()))
	}
	if s.Position() != LayoutBaseSize/2 {
		t.Fatalf("fresh divider = %d, want %d", s.Position(), LayoutBaseSize/2)
	}
	checkConsistency(t, w)
}

func TestSplitUpInsertsBefore(t *testing.T) {
	w, tab, p := newTestWindow(t)
	next := mustSplit(t, p, DirUp, "p1")

	s := tab.Root().Split()
	if s == nil {
		t.Fatalf("tab root is not a split after NewSplit")
	}
	if s.Orientation() != Vertical {
		t.Fatalf("orientation = %v, want vertical", s.Orientation())
	}
	if s.TopLeft().Pane() != next || s.BottomRight().Pane() != p {
		t.Fatalf("split up must insert new pane above: TL=%s BR=%s",
			surfaceName(s.TopLeft().Pane()), surfaceName(s.BottomRight().Pane()))
	}
	checkConsistency(t, w)
}

func TestSplitFocusesNewPane(t *testing.T) {
	_, tab, p := newTestWindow(t)
	next := mustSplit(t, p, DirDown, "p1")
	if tab.FocusedPane() != next {
		t.Fatalf("focus cursor = %s, want new pane", surfaceName(tab.FocusedPane()))
	}
	if next.Surface().(*fakeSurface).focused == 0 {
		t.Fatalf("new pane surface never received focus")
	}
}

func TestNestedSplitInheritsSlot(t *testing.T) {
	w, tab, p := newTestWindow(t)
	right := mustSplit(t, p, DirRight, "p1")
	below := mustSplit(t, right, DirDown, "p2")

	root := tab.Root().Split()
	inner := root.BottomRight().Split()
	if inner == nil {
		t.Fatalf("inner split missing: %#v", root.BottomRight())
	}
	if inner.TopLeft().Pane() != right || inner.BottomRight().Pane() != below {
		t.Fatalf("inner split children wrong: TL=%s BR=%s",
			surfaceName(inner.TopLeft().Pane()), surfaceName(inner.BottomRight().Pane()))
	}
	if got := inner.Container(); got != SplitContainer(root, BottomRight) {
		t.Fatalf("inner split container = %#v", got)
	}
	checkConsistency(t, w)
}

func TestSplitTooSmallLeavesTreeUntouched(t *testing.T) {
	w, tab, p := newTestWindow(t)
	small := p.Surface().(*fakeSurface)
	small.size.ScreenWidth = small.size.CellWidth*DefaultMinSplitCells - 1

	before := tab.Root()
	next, err := NewSplit(p, DirRight, newFakeSurface("p1"))
	if !errors.Is(err, ErrSplitTooSmall) {
		t.Fatalf("err = %v, want ErrSplitTooSmall", err)
	}
	if next != nil {
		t.Fatalf("rejected split returned a pane")
	}
	if tab.Root() != before || tab.Root().Pane() != p {
		t.Fatalf("rejected split mutated the tree: %#v", tab.Root())
	}
	if got := p.Container(); got != TabContainer(tab) {
		t.Fatalf("rejected split rewrote container: %#v", got)
	}
	checkConsistency(t, w)

	// The vertical axis is still tall enough.
	if _, err := NewSplit(p, DirDown, newFakeSurface("p1")); err != nil {
		t.Fatalf("vertical split error: %v", err)
	}
}

func TestSplitDetachedTargetIsNoop(t *testing.T) {
	p := NewPane(newFakeSurface("loose"))
	next, err := NewSplit(p, DirRight, newFakeSurface("p1"))
	if err != nil || next != nil {
		t.Fatalf("detached split: pane=%v err=%v, want nil/nil", next, err)
	}
}

func TestCollapseTransfersFocusToSurvivor(t *testing.T) {
	w, tab, a := newTestWindow(t)
	b := mustSplit(t, a, DirRight, "b")
	if tab.FocusedPane() != b {
		t.Fatalf("precondition: b focused")
	}

	if !ClosePane(b) {
		t.Fatalf("ClosePane returned false")
	}
	if tab.Root().Pane() != a {
		t.Fatalf("tab root = %#v, want pane a", tab.Root())
	}
	if tab.FocusedPane() != a {
		t.Fatalf("focus = %s, want a", surfaceName(tab.FocusedPane()))
	}
	if !b.Surface().(*fakeSurface).closed {
		t.Fatalf("closed pane surface not released")
	}
	if a.Surface().(*fakeSurface).closed {
		t.Fatalf("surviving pane surface was released")
	}
	checkConsistency(t, w)
}

func TestCollapseNestedSplitSkipsGrandparent(t *testing.T) {
	w, tab, a := newTestWindow(t)
	b := mustSplit(t, a, DirRight, "b")
	c := mustSplit(t, b, DirDown, "c")

	if !ClosePane(b) {
		t.Fatalf("ClosePane returned false")
	}
	root := tab.Root().Split()
	if root == nil {
		t.Fatalf("root split collapsed unexpectedly")
	}
	if root.TopLeft().Pane() != a || root.BottomRight().Pane() != c {
		t.Fatalf("tree after collapse: TL=%s BR=%s",
			surfaceName(root.TopLeft().Pane()), surfaceName(root.BottomRight().Pane()))
	}
	// Focus goes to the survivor's deepest pane toward the removed side.
	if tab.FocusedPane() != c {
		t.Fatalf("focus = %s, want c", surfaceName(tab.FocusedPane()))
	}
	checkConsistency(t, w)
}

func TestCollapsePreservesDividerOfSurvivor(t *testing.T) {
	_, tab, a := newTestWindow(t)
	b := mustSplit(t, a, DirRight, "b")
	c := mustSplit(t, b, DirDown, "c")

	root := tab.Root().Split()
	root.MoveDivider(DirRight, 200)
	want := root.Position()

	if !ClosePane(c) {
		t.Fatalf("ClosePane returned false")
	}
	if root.Position() != want {
		t.Fatalf("root divider = %d, want %d after nested collapse", root.Position(), want)
	}
}

func TestNSplitsThenRemovalsLeaveOnePane(t *testing.T) {
	const n = 8
	w, tab, p := newTestWindow(t)
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	target := p
	for i := 0; i < n; i++ {
		target = mustSplit(t, target, dirs[i%len(dirs)], "extra")
		checkConsistency(t, w)
	}
	panes := tab.Panes()
	if len(panes) != n+1 {
		t.Fatalf("pane count = %d, want %d", len(panes), n+1)
	}
	for len(panes) > 1 {
		if !ClosePane(panes[0]) {
			t.Fatalf("ClosePane returned false with %d panes left", len(panes))
		}
		checkConsistency(t, w)
		panes = tab.Panes()
	}
	if tab.Root().Pane() == nil || countSplits(tab.Root()) != 0 {
		t.Fatalf("final tree not a single pane: %#v", tab.Root())
	}
}

func TestCloseLastPaneClosesTab(t *testing.T) {
	w, tab, p := newTestWindow(t)
	if !ClosePane(p) {
		t.Fatalf("ClosePane returned false")
	}
	if !p.Surface().(*fakeSurface).closed {
		t.Fatalf("last pane surface not released")
	}
	if w.IndexOf(tab) >= 0 || !w.Closed() {
		t.Fatalf("window should be closed after last tab: tabs=%d", w.TabCount())
	}
}

func TestMoveDividerClamps(t *testing.T) {
	_, tab, p := newTestWindow(t)
	mustSplit(t, p, DirRight, "p1")
	s := tab.Root().Split()

	s.MoveDivider(DirLeft, LayoutBaseSize*2)
	if s.Position() != dividerMargin {
		t.Fatalf("left clamp = %d, want %d", s.Position(), dividerMargin)
	}
	s.MoveDivider(DirRight, LayoutBaseSize*2)
	if s.Position() != LayoutBaseSize-dividerMargin {
		t.Fatalf("right clamp = %d, want %d", s.Position(), LayoutBaseSize-dividerMargin)
	}
}

func TestResizeSplitFindsMatchingOrientation(t *testing.T) {
	_, tab, a := newTestWindow(t)
	b := mustSplit(t, a, DirRight, "b")
	mustSplit(t, b, DirDown, "c")

	root := tab.Root().Split()
	inner := root.BottomRight().Split()
	rootBefore, innerBefore := root.Position(), inner.Position()

	// b's direct parent is vertical; horizontal resize must walk up to
	// the root split.
	if !ResizeSplit(b, DirRight, 100) {
		t.Fatalf("ResizeSplit(right) returned false")
	}
	if root.Position() != rootBefore+100 {
		t.Fatalf("root divider = %d, want %d", root.Position(), rootBefore+100)
	}
	if inner.Position() != innerBefore {
		t.Fatalf("inner divider moved: %d", inner.Position())
	}

	if !ResizeSplit(b, DirUp, 50) {
		t.Fatalf("ResizeSplit(up) returned false")
	}
	if inner.Position() != innerBefore-50 {
		t.Fatalf("inner divider = %d, want %d", inner.Position(), innerBefore-50)
	}
}

func TestResizeWithoutMatchingSplitIsNoop(t *testing.T) {
	_, _, a := newTestWindow(t)
	mustSplit(t, a, DirRight, "b")
	// Only a horizontal split exists; vertical resize has no target.
	if ResizeSplit(a, DirDown, 100) {
		t.Fatalf("vertical resize should be a no-op in a horizontal-only tree")
	}
}
