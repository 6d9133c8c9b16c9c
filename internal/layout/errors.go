package layout

import "errors"

// ErrSplitTooSmall is returned when a split is requested on a pane whose
// surface is below the minimum extent in the split axis. The tree is left
// unchanged.
var ErrSplitTooSmall = errors.New("layout: pane too small to split")
