// Package tui is the presentation layer and action dispatcher: one Bubble
// Tea program rendering a layout.Window, forwarding keys to the focused
// pane's PTY, and translating keybindings into pane-tree operations.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termweave/termweave/internal/config"
	"github.com/termweave/termweave/internal/layout"
	"github.com/termweave/termweave/internal/session"
	"github.com/termweave/termweave/internal/terminal"
)

// Options configure the program.
type Options struct {
	Config config.Config
	Loader *config.Loader
	// Command overrides the configured shell for the first pane.
	Command string
	// Snapshot, when set, rebuilds a saved layout instead of starting
	// with a single pane.
	Snapshot *layout.WindowSnapshot
	// SnapshotPath is where the layout is saved on quit. Empty disables
	// persistence.
	SnapshotPath string
}

type paneUpdatedMsg struct {
	win *terminal.Window
	ok  bool
}

type configReloadedMsg struct{}

// Model drives one window. All tree mutations happen inside Update, so
// the single-threaded contract of the layout package holds.
type Model struct {
	ctx  context.Context
	win  *layout.Window
	cfg  config.Config
	keys KeyMap

	loader    *config.Loader
	reloads   chan struct{}
	stopWatch func() error
	snapPath  string

	width  int
	height int

	nextPane int
	status   string
}

// New builds the model and starts the first pane.
func New(ctx context.Context, opts Options) (*Model, error) {
	m := &Model{
		ctx:      ctx,
		cfg:      opts.Config,
		keys:     DefaultKeyMap(),
		loader:   opts.Loader,
		reloads:  make(chan struct{}, 1),
		snapPath: opts.SnapshotPath,
	}
	winOpts := layout.WindowOptions{MinSplitCells: m.cfg.MinSplitCells}
	if opts.Snapshot != nil {
		win, err := layout.Restore(opts.Snapshot, winOpts, func() (layout.Surface, error) {
			s, err := m.startSurface(m.cfg.Shell)
			if err != nil {
				return nil, err
			}
			return s, nil
		})
		if err != nil {
			return nil, err
		}
		m.win = win
	} else {
		m.win = layout.NewWindow(winOpts)
		command := opts.Command
		if command == "" {
			command = m.cfg.Shell
		}
		surface, err := m.startSurface(command)
		if err != nil {
			return nil, err
		}
		m.win.NewTab(surface, m.cfg.TabLabel)
	}

	if m.loader != nil && m.loader.Path() != "" {
		stop, err := config.Watch(m.loader.Path(), func() {
			select {
			case m.reloads <- struct{}{}:
			default:
			}
		})
		if err != nil {
			slog.Warn("tui: config watch unavailable", slog.Any("error", err))
		} else {
			m.stopWatch = stop
		}
	}
	return m, nil
}

func (m *Model) startSurface(command string) (*terminal.Window, error) {
	m.nextPane++
	return terminal.Start(m.ctx, terminal.Options{
		ID:      fmt.Sprintf("p-%d", m.nextPane),
		Command: command,
		Cols:    80,
		Rows:    24,
	})
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitReload()}
	for _, w := range m.terminals() {
		cmds = append(cmds, waitPane(w))
	}
	return tea.Batch(cmds...)
}

func waitPane(w *terminal.Window) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-w.Updates()
		return paneUpdatedMsg{win: w, ok: ok}
	}
}

func (m *Model) waitReload() tea.Cmd {
	return func() tea.Msg {
		<-m.reloads
		return configReloadedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizePanes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case paneUpdatedMsg:
		if !msg.ok {
			// Channel closed: the surface is gone.
			return m, nil
		}
		if msg.win.Exited() {
			return m.removeExited(msg.win)
		}
		return m, waitPane(msg.win)

	case configReloadedMsg:
		m.reloadConfig()
		return m, m.waitReload()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, m.quit()

	case key.Matches(msg, keys.SplitLeft):
		return m.split(layout.DirLeft)
	case key.Matches(msg, keys.SplitRight):
		return m.split(layout.DirRight)
	case key.Matches(msg, keys.SplitUp):
		return m.split(layout.DirUp)
	case key.Matches(msg, keys.SplitDown):
		return m.split(layout.DirDown)

	case key.Matches(msg, keys.GotoLeft):
		layout.GotoSplit(m.focusedPane(), layout.DirLeft)
	case key.Matches(msg, keys.GotoRight):
		layout.GotoSplit(m.focusedPane(), layout.DirRight)
	case key.Matches(msg, keys.GotoUp):
		layout.GotoSplit(m.focusedPane(), layout.DirUp)
	case key.Matches(msg, keys.GotoDown):
		layout.GotoSplit(m.focusedPane(), layout.DirDown)
	case key.Matches(msg, keys.GotoNext):
		layout.GotoSplit(m.focusedPane(), layout.DirNext)
	case key.Matches(msg, keys.GotoPrevious):
		layout.GotoSplit(m.focusedPane(), layout.DirPrevious)

	case key.Matches(msg, keys.ResizeLeft):
		m.resize(layout.DirLeft)
	case key.Matches(msg, keys.ResizeRight):
		m.resize(layout.DirRight)
	case key.Matches(msg, keys.ResizeUp):
		m.resize(layout.DirUp)
	case key.Matches(msg, keys.ResizeDown):
		m.resize(layout.DirDown)

	case key.Matches(msg, keys.Equalize):
		layout.EqualizeSplits(m.focusedPane())
		m.resizePanes()
	case key.Matches(msg, keys.Zoom):
		layout.ToggleSplitZoom(m.focusedPane())
		m.resizePanes()
	case key.Matches(msg, keys.ClosePane):
		return m.closeFocused()

	case key.Matches(msg, keys.NewTab):
		return m.newTab()
	case key.Matches(msg, keys.CloseTab):
		return m.closeTab()
	case key.Matches(msg, keys.NextTab):
		m.win.NextTab()
		m.resizePanes()
	case key.Matches(msg, keys.PreviousTab):
		m.win.PreviousTab()
		m.resizePanes()

	default:
		return m, m.forwardKey(msg)
	}
	return m, nil
}

func (m *Model) split(dir layout.Direction) (tea.Model, tea.Cmd) {
	target := m.focusedPane()
	if target == nil {
		return m, nil
	}
	surface, err := m.startSurface(m.cfg.Shell)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	next, err := layout.NewSplit(target, dir, surface)
	if err != nil {
		// Constraint violation: nothing changed, release the spare.
		_ = surface.Close()
		m.status = err.Error()
		return m, nil
	}
	if next == nil {
		_ = surface.Close()
		return m, nil
	}
	m.status = ""
	m.resizePanes()
	return m, waitPane(surface)
}

func (m *Model) resize(dir layout.Direction) {
	if layout.ResizeSplit(m.focusedPane(), dir, m.cfg.ResizeStep) {
		m.resizePanes()
	}
}

func (m *Model) closeFocused() (tea.Model, tea.Cmd) {
	layout.ClosePane(m.focusedPane())
	if m.win.Closed() {
		return m, m.quit()
	}
	m.resizePanes()
	return m, nil
}

func (m *Model) newTab() (tea.Model, tea.Cmd) {
	surface, err := m.startSurface(m.cfg.Shell)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.win.NewTab(surface, m.cfg.TabLabel)
	m.resizePanes()
	return m, waitPane(surface)
}

func (m *Model) closeTab() (tea.Model, tea.Cmd) {
	m.win.CloseTab(m.win.SelectedTab())
	if m.win.Closed() {
		return m, m.quit()
	}
	m.resizePanes()
	return m, nil
}

func (m *Model) removeExited(w *terminal.Window) (tea.Model, tea.Cmd) {
	if p := m.paneFor(w); p != nil {
		layout.ClosePane(p)
	}
	if m.win.Closed() {
		return m, m.quit()
	}
	m.resizePanes()
	return m, nil
}

func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	p := m.focusedPane()
	if p == nil {
		return nil
	}
	w, ok := p.Surface().(*terminal.Window)
	if !ok {
		return nil
	}
	data := encodeKeyMsg(msg)
	if len(data) == 0 {
		return nil
	}
	if err := w.SendInput(data); err != nil {
		slog.Debug("tui: pane input failed", slog.String("pane", w.ID()), slog.Any("error", err))
	}
	return nil
}

func (m *Model) reloadConfig() {
	if m.loader == nil {
		return
	}
	cfg, err := m.loader.Load()
	if err != nil {
		slog.Warn("tui: config reload failed", slog.Any("error", err))
		return
	}
	m.cfg = cfg
	m.status = "config reloaded"
}

func (m *Model) quit() tea.Cmd {
	if m.stopWatch != nil {
		_ = m.stopWatch()
		m.stopWatch = nil
	}
	if m.snapPath != "" {
		if err := session.Save(m.snapPath, m.win); err != nil {
			slog.Warn("tui: save layout failed", slog.Any("error", err))
		}
	}
	for _, w := range m.terminals() {
		_ = w.Close()
	}
	return tea.Quit
}

func (m *Model) focusedPane() *layout.Pane {
	return m.win.SelectedTab().FocusedPane()
}

func (m *Model) paneFor(w *terminal.Window) *layout.Pane {
	for _, tab := range m.win.Tabs() {
		for _, p := range tab.Panes() {
			if s, ok := p.Surface().(*terminal.Window); ok && s == w {
				return p
			}
		}
	}
	return nil
}

func (m *Model) terminals() []*terminal.Window {
	var out []*terminal.Window
	for _, tab := range m.win.Tabs() {
		for _, p := range tab.Panes() {
			if w, ok := p.Surface().(*terminal.Window); ok {
				out = append(out, w)
			}
		}
	}
	return out
}
