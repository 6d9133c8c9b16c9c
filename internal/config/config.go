// Package config loads ~/.termweave/config.yaml: pane policy, the shell
// command, and the logging section. A Loader caches by file state so the
// TUI can call Load on every reload signal without rereading.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/termweave/termweave/internal/logging"
)

const (
	defaultMinSplitCells = 4
	defaultResizeStep    = 50
	defaultTabLabel      = "shell"
)

// Config represents ~/.termweave/config.yaml.
type Config struct {
	// Shell is the command started in every new pane. Empty means the
	// platform shell ($SHELL, cmd.exe).
	Shell string `yaml:"shell,omitempty"`
	// MinSplitCells is the minimum pane extent, in cells along the split
	// axis, required to allow a further split.
	MinSplitCells int `yaml:"min_split_cells,omitempty"`
	// ResizeStep is the divider movement per resize keypress, out of the
	// layout base size of 1000.
	ResizeStep int `yaml:"resize_step,omitempty"`
	// TabLabel is the label given to fresh tabs.
	TabLabel string `yaml:"tab_label,omitempty"`

	Logging logging.Config `yaml:"logging,omitempty"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		MinSplitCells: defaultMinSplitCells,
		ResizeStep:    defaultResizeStep,
		TabLabel:      defaultTabLabel,
	}
}

// DefaultPath returns the default global config path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".termweave", "config.yaml"), nil
}

type fileState struct {
	modTime time.Time
	size    int64
}

// Loader caches config values and reloads when the file changes.
type Loader struct {
	path     string
	lastRead fileState
	cached   Config
}

// NewLoader creates a config loader for the provided path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:   strings.TrimSpace(path),
		cached: Defaults(),
	}
}

func (l *Loader) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Load returns the cached config, reloading if the file changed. A
// missing file yields defaults.
func (l *Loader) Load() (Config, error) {
	if l == nil {
		return Defaults(), errors.New("config: nil loader")
	}
	path := strings.TrimSpace(l.path)
	if path == "" {
		return Defaults(), errors.New("config: empty config path")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.cached = Defaults()
			l.lastRead = fileState{}
			return l.cached, nil
		}
		return Defaults(), err
	}
	state := fileState{modTime: info.ModTime(), size: info.Size()}
	if state == l.lastRead {
		return l.cached, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}
	applyDefaults(&cfg)
	l.cached = cfg
	l.lastRead = state
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.MinSplitCells <= 0 {
		cfg.MinSplitCells = defaultMinSplitCells
	}
	if cfg.ResizeStep <= 0 {
		cfg.ResizeStep = defaultResizeStep
	}
	if strings.TrimSpace(cfg.TabLabel) == "" {
		cfg.TabLabel = defaultTabLabel
	}
}
