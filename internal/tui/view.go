package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/termweave/termweave/internal/layout"
	"github.com/termweave/termweave/internal/terminal"
)

const (
	tabBarHeight = 1
	maxTabLabel  = 16
)

var (
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	tabStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	focusedBorder   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
	unfocusedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= tabBarHeight {
		return ""
	}
	tab := m.win.SelectedTab()
	if tab == nil {
		return ""
	}
	body := m.viewTab(tab, m.width, m.height-tabBarHeight)
	return m.viewTabBar() + "\n" + body
}

func (m *Model) viewTabBar() string {
	var cells []string
	for i, tab := range m.win.Tabs() {
		label := runewidth.Truncate(tab.Label(), maxTabLabel, "…")
		if tab.Zoomed() != nil {
			label += " [z]"
		}
		if i == m.win.SelectedIndex() {
			cells = append(cells, activeTabStyle.Render(label))
		} else {
			cells = append(cells, tabStyle.Render(label))
		}
	}
	if m.status != "" {
		cells = append(cells, statusStyle.Render(m.status))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return ansi.Truncate(bar, m.width, "")
}

func (m *Model) viewTab(tab *layout.Tab, w, h int) string {
	if z := tab.Zoomed(); z != nil {
		return m.renderPane(tab, z, w, h)
	}
	return m.renderElem(tab, tab.Root(), w, h)
}

// renderElem composes the split tree: each split is a lipgloss join of
// its two children, sized by the divider position. The same arithmetic
// drives walkPaneBoxes so PTY sizes always match what is rendered.
func (m *Model) renderElem(tab *layout.Tab, e layout.Elem, w, h int) string {
	if p := e.Pane(); p != nil {
		return m.renderPane(tab, p, w, h)
	}
	s := e.Split()
	if s == nil {
		return ""
	}
	if s.Orientation() == layout.Horizontal {
		lw := w * s.Position() / layout.LayoutBaseSize
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderElem(tab, s.TopLeft(), lw, h),
			m.renderElem(tab, s.BottomRight(), w-lw, h))
	}
	th := h * s.Position() / layout.LayoutBaseSize
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderElem(tab, s.TopLeft(), w, th),
		m.renderElem(tab, s.BottomRight(), w, h-th))
}

func (m *Model) renderPane(tab *layout.Tab, p *layout.Pane, w, h int) string {
	if w < 2 || h < 2 {
		return ""
	}
	content := ""
	if win, ok := p.Surface().(*terminal.Window); ok {
		content = cropANSI(win.Render(), w-2, h-2)
	}
	style := unfocusedBorder
	if tab.FocusedPane() == p {
		style = focusedBorder
	}
	return style.Width(w - 2).Height(h - 2).Render(content)
}

// cropANSI clips rendered terminal output to the pane's content box,
// preserving styling.
func cropANSI(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, w, "")
	}
	return strings.Join(lines, "\n")
}

// resizePanes pushes the current cell boxes of the selected tab down to
// the PTYs.
func (m *Model) resizePanes() {
	tab := m.win.SelectedTab()
	if tab == nil || m.width <= 0 || m.height <= tabBarHeight {
		return
	}
	walkPaneBoxes(tab, m.width, m.height-tabBarHeight, func(p *layout.Pane, w, h int) {
		if win, ok := p.Surface().(*terminal.Window); ok && w > 2 && h > 2 {
			win.Resize(w-2, h-2)
		}
	})
}

// walkPaneBoxes visits every visible pane with its total cell box,
// mirroring renderElem's split arithmetic exactly.
func walkPaneBoxes(tab *layout.Tab, w, h int, visit func(p *layout.Pane, w, h int)) {
	if z := tab.Zoomed(); z != nil {
		visit(z, w, h)
		return
	}
	var walk func(e layout.Elem, w, h int)
	walk = func(e layout.Elem, w, h int) {
		if p := e.Pane(); p != nil {
			visit(p, w, h)
			return
		}
		s := e.Split()
		if s == nil {
			return
		}
		if s.Orientation() == layout.Horizontal {
			lw := w * s.Position() / layout.LayoutBaseSize
			walk(s.TopLeft(), lw, h)
			walk(s.BottomRight(), w-lw, h)
			return
		}
		th := h * s.Position() / layout.LayoutBaseSize
		walk(s.TopLeft(), w, th)
		walk(s.BottomRight(), w, h-th)
	}
	walk(tab.Root(), w, h)
}
