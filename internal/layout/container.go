package layout

type containerKind int

const (
	containerNone containerKind = iota
	containerTab
	containerSplit
)

// Container is the back-reference stored on every pane and split: it names
// the exact parent slot that holds the node as a direct child, or the tab
// that holds it as root, or nothing while the node is mid-construction.
// Containers make "what tab am I in" and "who is my sibling" O(depth)
// upward walks instead of downward searches.
//
// Every mutation must restore the bidirectional invariant before returning:
// parent reaches child through its Elem slot, child reaches parent through
// its Container.
type Container struct {
	kind  containerKind
	tab   *Tab
	split *Split
	side  Side
}

// TabContainer places a node directly at a tab's root.
func TabContainer(t *Tab) Container {
	return Container{kind: containerTab, tab: t}
}

// SplitContainer places a node in one slot of a split.
func SplitContainer(s *Split, side Side) Container {
	return Container{kind: containerSplit, split: s, side: side}
}

// IsNone reports whether the node is not attached anywhere. All queries on
// a none container return zero values; callers treat that as "not yet
// attached, no-op".
func (c Container) IsNone() bool {
	return c.kind == containerNone
}

// Window walks upward to the owning window, or nil.
func (c Container) Window() *Window {
	if t := c.Tab(); t != nil {
		return t.window
	}
	return nil
}

// Tab walks upward to the first enclosing tab, or nil.
func (c Container) Tab() *Tab {
	switch c.kind {
	case containerTab:
		return c.tab
	case containerSplit:
		if c.split == nil {
			return nil
		}
		return c.split.container.Tab()
	default:
		return nil
	}
}

// Split returns the immediately enclosing split, or nil if the node is a
// tab root or detached.
func (c Container) Split() *Split {
	if c.kind != containerSplit {
		return nil
	}
	return c.split
}

// Side reports which slot of the enclosing split the node occupies.
func (c Container) Side() (Side, bool) {
	if c.kind != containerSplit {
		return 0, false
	}
	return c.side, true
}

// FirstSplitWithOrientation walks upward until it finds an enclosing split
// with the given orientation, or nil. Used for edge-aware resize: resizing
// left/right must act on the nearest horizontal split even when the pane's
// direct parent is vertical.
func (c Container) FirstSplitWithOrientation(o Orientation) *Split {
	s := c.Split()
	for s != nil {
		if s.orientation == o {
			return s
		}
		s = s.container.Split()
	}
	return nil
}

// replace rewrites the slot this container names to hold e, updating e's
// own container to match. This is the single re-parenting primitive: split
// creation and collapse both go through it. A none container ignores the
// call.
func (c Container) replace(e Elem) {
	switch c.kind {
	case containerTab:
		if c.tab != nil {
			c.tab.setRoot(e)
		}
	case containerSplit:
		if c.split != nil {
			c.split.replaceChild(c.side, e)
		}
	}
}
