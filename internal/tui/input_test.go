package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termweave/termweave/internal/layout"
)

func TestEncodeKeyMsgRunes(t *testing.T) {
	got := encodeKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	if !bytes.Equal(got, []byte("hi")) {
		t.Fatalf("encodeKeyMsg(runes) = %q", got)
	}
}

func TestEncodeKeyMsgNamedKeys(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want []byte
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, []byte{'\r'}},
		{tea.KeyMsg{Type: tea.KeyTab}, []byte{'\t'}},
		{tea.KeyMsg{Type: tea.KeySpace}, []byte{' '}},
		{tea.KeyMsg{Type: tea.KeyEsc}, []byte{0x1b}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, []byte{0x7f}},
		{tea.KeyMsg{Type: tea.KeyUp}, []byte("\x1b[A")},
		{tea.KeyMsg{Type: tea.KeyDown}, []byte("\x1b[B")},
		{tea.KeyMsg{Type: tea.KeyRight}, []byte("\x1b[C")},
		{tea.KeyMsg{Type: tea.KeyLeft}, []byte("\x1b[D")},
		{tea.KeyMsg{Type: tea.KeyHome}, []byte("\x1b[H")},
		{tea.KeyMsg{Type: tea.KeyEnd}, []byte("\x1b[F")},
		{tea.KeyMsg{Type: tea.KeyPgUp}, []byte("\x1b[5~")},
		{tea.KeyMsg{Type: tea.KeyPgDown}, []byte("\x1b[6~")},
		{tea.KeyMsg{Type: tea.KeyDelete}, []byte("\x1b[3~")},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, []byte("\x1b[Z")},
	}
	for _, c := range cases {
		if got := encodeKeyMsg(c.msg); !bytes.Equal(got, c.want) {
			t.Errorf("encodeKeyMsg(%s) = %q, want %q", c.msg.String(), got, c.want)
		}
	}
}

func TestEncodeKeyMsgCtrl(t *testing.T) {
	got := encodeKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !bytes.Equal(got, []byte{0x03}) {
		t.Fatalf("encodeKeyMsg(ctrl+c) = %q", got)
	}
	got = encodeKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlA})
	if !bytes.Equal(got, []byte{0x01}) {
		t.Fatalf("encodeKeyMsg(ctrl+a) = %q", got)
	}
}

func TestEncodeKeyMsgAlt(t *testing.T) {
	got := encodeKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if !bytes.Equal(got, []byte("\x1bx")) {
		t.Fatalf("encodeKeyMsg(alt+x) = %q", got)
	}
}

func TestCtrlSequenceRejectsNonLetters(t *testing.T) {
	if seq := ctrlSequence("ctrl+1"); seq != nil {
		t.Fatalf("ctrlSequence(ctrl+1) = %q, want nil", seq)
	}
	if seq := ctrlSequence("ctrl+shift+a"); seq != nil {
		t.Fatalf("ctrlSequence(ctrl+shift+a) = %q, want nil", seq)
	}
}

func TestCropANSI(t *testing.T) {
	s := "aaaa\nbbbb\ncccc"
	got := cropANSI(s, 2, 2)
	if got != "aa\nbb" {
		t.Fatalf("cropANSI = %q", got)
	}
	if cropANSI(s, 0, 2) != "" {
		t.Fatal("cropANSI with zero width should be empty")
	}
}

type nullSurface struct{}

func (nullSurface) Widget() layout.Widget { return nil }
func (nullSurface) Focus()                {}
func (nullSurface) Close() error          { return nil }
func (nullSurface) Size() layout.SurfaceSize {
	return layout.SurfaceSize{ScreenWidth: 800, ScreenHeight: 600, CellWidth: 8, CellHeight: 16}
}

func TestWalkPaneBoxesSplitsArithmetic(t *testing.T) {
	win := layout.NewWindow(layout.WindowOptions{})
	tab := win.NewTab(nullSurface{}, "box")
	root := tab.Root().Pane()

	// 60/40 horizontal split of a 100x50 box.
	if _, err := layout.NewSplit(root, layout.DirRight, nullSurface{}); err != nil {
		t.Fatalf("split: %v", err)
	}
	layout.ResizeSplit(root, layout.DirRight, 100)

	boxes := map[*layout.Pane][2]int{}
	walkPaneBoxes(tab, 100, 50, func(p *layout.Pane, w, h int) {
		boxes[p] = [2]int{w, h}
	})
	if len(boxes) != 2 {
		t.Fatalf("visited %d panes, want 2", len(boxes))
	}
	if box := boxes[root]; box != [2]int{60, 50} {
		t.Errorf("root box = %v, want [60 50]", box)
	}
	var total int
	for _, box := range boxes {
		if box[1] != 50 {
			t.Errorf("pane height = %d, want 50", box[1])
		}
		total += box[0]
	}
	if total != 100 {
		t.Errorf("pane widths sum to %d, want 100", total)
	}
}

func TestWalkPaneBoxesZoomed(t *testing.T) {
	win := layout.NewWindow(layout.WindowOptions{})
	tab := win.NewTab(nullSurface{}, "box")
	root := tab.Root().Pane()
	other, err := layout.NewSplit(root, layout.DirRight, nullSurface{})
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	layout.ToggleSplitZoom(other)

	var visited []*layout.Pane
	walkPaneBoxes(tab, 100, 50, func(p *layout.Pane, w, h int) {
		visited = append(visited, p)
		if w != 100 || h != 50 {
			t.Errorf("zoomed box = %dx%d, want 100x50", w, h)
		}
	})
	if len(visited) != 1 || visited[0] != other {
		t.Fatalf("visited %v, want only the zoomed pane", visited)
	}
}
