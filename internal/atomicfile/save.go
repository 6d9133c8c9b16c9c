// Package atomicfile writes files through a sibling temp file and rename,
// so a reader sees either the old content or the new, never a torn write.
package atomicfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes data to path atomically. The parent directory is created if
// missing; perm 0 defaults to owner read/write.
func Save(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return errors.New("atomicfile: empty path")
	}
	if perm == 0 {
		perm = 0o600
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("atomicfile: prepare %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("atomicfile: stage %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	err = tmp.Chmod(perm)
	if err == nil {
		_, err = tmp.Write(data)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("atomicfile: stage %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("atomicfile: commit %s: %w", path, err)
	}
	return nil
}
