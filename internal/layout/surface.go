package layout

// Widget is an opaque presentation handle. The tree carries widgets through
// splits and tabs but never inspects them; attach/detach is the presentation
// layer's job.
type Widget any

// SurfaceSize reports a surface's on-screen extent and the size of one
// character cell, both in the same unit (pixels for a GUI front end, cells
// for a TUI front end where CellWidth and CellHeight are 1).
type SurfaceSize struct {
	ScreenWidth  int
	ScreenHeight int
	CellWidth    int
	CellHeight   int
}

// Surface is the terminal surface behind a Pane. The tree owns the
// lifecycle (Close on removal) but delegates everything else.
type Surface interface {
	// Widget returns the presentation handle for attach/detach.
	Widget() Widget
	// Focus moves input focus to the surface.
	Focus()
	// Size is used only for the minimum-size check before splitting.
	Size() SurfaceSize
	// Close releases the surface. Called exactly once, after the tree
	// mutation that removed the pane has committed.
	Close() error
}
