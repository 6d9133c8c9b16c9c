package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/termweave/termweave/internal/layout"
)

type stubSurface struct{}

func (stubSurface) Widget() layout.Widget { return nil }
func (stubSurface) Focus()                {}
func (stubSurface) Close() error          { return nil }
func (stubSurface) Size() layout.SurfaceSize {
	return layout.SurfaceSize{ScreenWidth: 800, ScreenHeight: 600, CellWidth: 8, CellHeight: 16}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	win := layout.NewWindow(layout.WindowOptions{})
	tab := win.NewTab(stubSurface{}, "work")
	if _, err := layout.NewSplit(tab.Root().Pane(), layout.DirRight, stubSurface{}); err != nil {
		t.Fatalf("split: %v", err)
	}

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := Save(path, win); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Tabs) != 1 || snap.Tabs[0].Label != "work" {
		t.Fatalf("snapshot = %#v", snap)
	}
	if snap.Tabs[0].Root == nil || snap.Tabs[0].Root.Pane {
		t.Fatalf("root should be a split node: %#v", snap.Tabs[0].Root)
	}

	restored, err := layout.Restore(snap, layout.WindowOptions{}, func() (layout.Surface, error) {
		return stubSurface{}, nil
	})
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if len(restored.SelectedTab().Panes()) != 2 {
		t.Fatalf("restored %d panes, want 2", len(restored.SelectedTab().Panes()))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "session.yaml")); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSaveClosedWindowRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("tabs: []\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save(nil) error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("snapshot file should be gone, stat err = %v", err)
	}
}

func TestLoadRejectsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("tabs: []\n"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}
}
