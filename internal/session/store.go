// Package session persists the window layout between runs. Only the
// arrangement is stored; panes get fresh shells on restore.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/termweave/termweave/internal/appdirs"
	"github.com/termweave/termweave/internal/atomicfile"
	"github.com/termweave/termweave/internal/layout"
)

const snapshotFile = "session.yaml"

// ErrNoSnapshot reports that no saved layout exists.
var ErrNoSnapshot = errors.New("session: no saved layout")

// DefaultPath returns the snapshot location under the state directory.
func DefaultPath() (string, error) {
	dir, err := appdirs.StateDirPath()
	if err != nil {
		return "", fmt.Errorf("session: resolve state dir: %w", err)
	}
	return filepath.Join(dir, snapshotFile), nil
}

// Save writes the window's layout snapshot to path. A nil snapshot
// (closed window) removes any stale file instead.
func Save(path string, w *layout.Window) error {
	snap := layout.Snapshot(w)
	if snap == nil {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("session: remove snapshot: %w", err)
		}
		return nil
	}
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("session: encode snapshot: %w", err)
	}
	if err := atomicfile.Save(path, data, 0o600); err != nil {
		return fmt.Errorf("session: write snapshot: %w", err)
	}
	return nil
}

// Load reads a layout snapshot from path.
func Load(path string) (*layout.WindowSnapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("session: read snapshot: %w", err)
	}
	var snap layout.WindowSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("session: decode snapshot: %w", err)
	}
	if len(snap.Tabs) == 0 {
		return nil, ErrNoSnapshot
	}
	return &snap, nil
}
