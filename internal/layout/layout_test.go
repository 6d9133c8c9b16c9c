package layout

import "testing"

// fakeSurface is a test double for the terminal surface: big enough to
// split by default, and it records focus and close calls.
type fakeSurface struct {
	name    string
	size    SurfaceSize
	focused int
	closed  bool
}

func newFakeSurface(name string) *fakeSurface {
	return &fakeSurface{
		name: name,
		size: SurfaceSize{ScreenWidth: 800, ScreenHeight: 600, CellWidth: 8, CellHeight: 16},
	}
}

func (s *fakeSurface) Widget() Widget    { return s }
func (s *fakeSurface) Focus()            { s.focused++ }
func (s *fakeSurface) Size() SurfaceSize { return s.size }
func (s *fakeSurface) Close() error {
	s.closed = true
	return nil
}

func newTestWindow(t *testing.T) (*Window, *Tab, *Pane) {
	t.Helper()
	w := NewWindow(WindowOptions{})
	tab := w.NewTab(newFakeSurface("p0"), "tab0")
	p := tab.Root().Pane()
	if p == nil {
		t.Fatalf("new tab root is not a pane: %#v", tab.Root())
	}
	return w, tab, p
}

func mustSplit(t *testing.T, target *Pane, dir Direction, name string) *Pane {
	t.Helper()
	next, err := NewSplit(target, dir, newFakeSurface(name))
	if err != nil {
		t.Fatalf("NewSplit(%v) error: %v", dir, err)
	}
	if next == nil {
		t.Fatalf("NewSplit(%v) returned no pane", dir)
	}
	return next
}

func surfaceName(p *Pane) string {
	if p == nil || p.Surface() == nil {
		return "<nil>"
	}
	return p.Surface().(*fakeSurface).name
}

// checkConsistency verifies the bidirectional back-reference invariant
// for every reachable node: each child's container resolves to exactly
// the parent slot that holds it, and every split has both slots occupied.
func checkConsistency(t *testing.T, w *Window) {
	t.Helper()
	for _, tab := range w.Tabs() {
		if tab.Root().IsZero() {
			t.Fatalf("tab %q has empty root", tab.Label())
		}
		checkElem(t, tab.Root(), TabContainer(tab))
	}
}

func checkElem(t *testing.T, e Elem, want Container) {
	t.Helper()
	if got := e.container(); got != want {
		t.Fatalf("container mismatch: got %#v, want %#v", got, want)
	}
	s := e.Split()
	if s == nil {
		return
	}
	if s.TopLeft().IsZero() || s.BottomRight().IsZero() {
		t.Fatalf("singleton split: %#v", s)
	}
	checkElem(t, s.TopLeft(), SplitContainer(s, TopLeft))
	checkElem(t, s.BottomRight(), SplitContainer(s, BottomRight))
}

func countSplits(e Elem) int {
	s := e.Split()
	if s == nil {
		return 0
	}
	return 1 + countSplits(s.TopLeft()) + countSplits(s.BottomRight())
}
