package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds user actions to the pane tree. Everything else typed while
// a pane is focused is forwarded to its PTY, so all bindings carry alt.
type KeyMap struct {
	SplitLeft  key.Binding
	SplitRight key.Binding
	SplitUp    key.Binding
	SplitDown  key.Binding

	GotoLeft     key.Binding
	GotoRight    key.Binding
	GotoUp       key.Binding
	GotoDown     key.Binding
	GotoNext     key.Binding
	GotoPrevious key.Binding

	ResizeLeft  key.Binding
	ResizeRight key.Binding
	ResizeUp    key.Binding
	ResizeDown  key.Binding

	Equalize  key.Binding
	Zoom      key.Binding
	ClosePane key.Binding

	NewTab      key.Binding
	CloseTab    key.Binding
	NextTab     key.Binding
	PreviousTab key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		SplitLeft:  key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "split left")),
		SplitRight: key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "split right")),
		SplitUp:    key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "split up")),
		SplitDown:  key.NewBinding(key.WithKeys("alt+j"), key.WithHelp("alt+j", "split down")),

		GotoLeft:     key.NewBinding(key.WithKeys("alt+left"), key.WithHelp("alt+←", "focus left")),
		GotoRight:    key.NewBinding(key.WithKeys("alt+right"), key.WithHelp("alt+→", "focus right")),
		GotoUp:       key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "focus up")),
		GotoDown:     key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "focus down")),
		GotoNext:     key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "next pane")),
		GotoPrevious: key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "previous pane")),

		ResizeLeft:  key.NewBinding(key.WithKeys("alt+shift+left"), key.WithHelp("alt+shift+←", "resize left")),
		ResizeRight: key.NewBinding(key.WithKeys("alt+shift+right"), key.WithHelp("alt+shift+→", "resize right")),
		ResizeUp:    key.NewBinding(key.WithKeys("alt+shift+up"), key.WithHelp("alt+shift+↑", "resize up")),
		ResizeDown:  key.NewBinding(key.WithKeys("alt+shift+down"), key.WithHelp("alt+shift+↓", "resize down")),

		Equalize:  key.NewBinding(key.WithKeys("alt+="), key.WithHelp("alt+=", "equalize")),
		Zoom:      key.NewBinding(key.WithKeys("alt+z"), key.WithHelp("alt+z", "zoom")),
		ClosePane: key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "close pane")),

		NewTab:      key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "new tab")),
		CloseTab:    key.NewBinding(key.WithKeys("alt+T"), key.WithHelp("alt+T", "close tab")),
		NextTab:     key.NewBinding(key.WithKeys("alt+]"), key.WithHelp("alt+]", "next tab")),
		PreviousTab: key.NewBinding(key.WithKeys("alt+["), key.WithHelp("alt+[", "previous tab")),

		Quit: key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quit")),
	}
}
