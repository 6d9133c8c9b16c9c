//go:build !windows

package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateDirEnv overrides the state directory (logs, saved layouts).
const StateDirEnv = "TERMWEAVE_STATE_DIR"

// StateDirPath resolves the state directory without creating it.
func StateDirPath() (string, error) {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir, nil
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "termweave"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("appdirs: resolve home: %w", err)
	}
	return filepath.Join(home, ".local", "state", "termweave"), nil
}

// StateDir resolves and creates the state directory, private to the user.
func StateDir() (string, error) {
	dir, err := StateDirPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("appdirs: create state dir: %w", err)
	}
	return dir, nil
}
