package layout

import "fmt"

// WindowSnapshot captures a window's tab arrangement in a YAML-safe format
// without back-references, so a layout can be persisted and rebuilt with
// fresh surfaces.
type WindowSnapshot struct {
	Selected int           `yaml:"selected"`
	Tabs     []TabSnapshot `yaml:"tabs"`
}

// TabSnapshot captures one tab. Zoom records the depth-first index of the
// zoomed pane, or -1.
type TabSnapshot struct {
	Label string        `yaml:"label,omitempty"`
	Zoom  int           `yaml:"zoom"`
	Root  *NodeSnapshot `yaml:"root"`
}

// NodeSnapshot captures one tree node. A leaf has Pane true and no
// children; a split carries orientation, divider position, and both
// subtrees.
type NodeSnapshot struct {
	Pane        bool          `yaml:"pane,omitempty"`
	Orientation string        `yaml:"orientation,omitempty"`
	Position    int           `yaml:"position,omitempty"`
	TopLeft     *NodeSnapshot `yaml:"top_left,omitempty"`
	BottomRight *NodeSnapshot `yaml:"bottom_right,omitempty"`
}

// Snapshot converts a window into a snapshot.
func Snapshot(w *Window) *WindowSnapshot {
	if w == nil || len(w.tabs) == 0 {
		return nil
	}
	snap := &WindowSnapshot{Selected: w.selected}
	for _, t := range w.tabs {
		zoom := -1
		if t.zoomed != nil {
			for i, p := range t.Panes() {
				if p == t.zoomed {
					zoom = i
					break
				}
			}
		}
		snap.Tabs = append(snap.Tabs, TabSnapshot{
			Label: t.label,
			Zoom:  zoom,
			Root:  snapshotElem(t.root),
		})
	}
	return snap
}

func snapshotElem(e Elem) *NodeSnapshot {
	switch {
	case e.Pane() != nil:
		return &NodeSnapshot{Pane: true}
	case e.Split() != nil:
		s := e.Split()
		return &NodeSnapshot{
			Orientation: s.orientation.String(),
			Position:    s.position,
			TopLeft:     snapshotElem(s.topLeft),
			BottomRight: snapshotElem(s.bottomRight),
		}
	default:
		return nil
	}
}

// Restore rebuilds a window from a snapshot, calling newSurface once per
// pane in depth-first order.
func Restore(snap *WindowSnapshot, opts WindowOptions, newSurface func() (Surface, error)) (*Window, error) {
	if snap == nil || len(snap.Tabs) == 0 {
		return nil, fmt.Errorf("layout: empty snapshot")
	}
	w := NewWindow(opts)
	for i, ts := range snap.Tabs {
		if ts.Root == nil {
			return nil, fmt.Errorf("layout: snapshot tab %d has no root", i)
		}
		t := &Tab{window: w, label: ts.Label}
		root, err := restoreElem(ts.Root, newSurface)
		if err != nil {
			return nil, err
		}
		t.setRoot(root)
		panes := t.Panes()
		if len(panes) > 0 {
			t.focused = panes[0]
		}
		if ts.Zoom >= 0 && ts.Zoom < len(panes) {
			t.zoomed = panes[ts.Zoom]
		}
		w.tabs = append(w.tabs, t)
	}
	if snap.Selected >= 0 && snap.Selected < len(w.tabs) {
		w.selected = snap.Selected
	}
	return w, nil
}

func restoreElem(node *NodeSnapshot, newSurface func() (Surface, error)) (Elem, error) {
	if node == nil {
		return Elem{}, fmt.Errorf("layout: snapshot node missing")
	}
	if node.Pane {
		surface, err := newSurface()
		if err != nil {
			return Elem{}, err
		}
		return PaneElem(NewPane(surface)), nil
	}
	orientation := Horizontal
	if node.Orientation == Vertical.String() {
		orientation = Vertical
	}
	s := &Split{orientation: orientation}
	s.setPosition(node.Position)
	tl, err := restoreElem(node.TopLeft, newSurface)
	if err != nil {
		return Elem{}, err
	}
	br, err := restoreElem(node.BottomRight, newSurface)
	if err != nil {
		return Elem{}, err
	}
	s.topLeft = tl
	s.bottomRight = br
	tl.setContainer(SplitContainer(s, TopLeft))
	br.setContainer(SplitContainer(s, BottomRight))
	return SplitElem(s), nil
}
