// Package entry wires configuration, logging and the terminal UI into
// the command-line front end.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/termweave/termweave/internal/config"
	"github.com/termweave/termweave/internal/layout"
	"github.com/termweave/termweave/internal/logging"
	"github.com/termweave/termweave/internal/session"
	"github.com/termweave/termweave/internal/tui"
)

const appName = "termweave"

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	cmd := newCommand(version)
	if err := cmd.Run(context.Background(), args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

func newCommand(version string) *cli.Command {
	return &cli.Command{
		Name:    appName,
		Usage:   "terminal multiplexer with split panes and tabs",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the config file",
			},
			&cli.StringFlag{
				Name:    "command",
				Aliases: []string{"c"},
				Usage:   "command to run in the first pane instead of the shell",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:    "restore",
				Aliases: []string{"r"},
				Usage:   "restore the pane layout from the previous run",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runUI(ctx, cmd, version)
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(_ context.Context, cmd *cli.Command) error {
					fmt.Fprintf(cmd.Root().Writer, "%s %s\n", appName, version)
					return nil
				},
			},
		},
	}
}

func runUI(ctx context.Context, cmd *cli.Command, version string) error {
	path := cmd.String("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("entry: resolve config path: %w", err)
		}
	}
	loader := config.NewLoader(path)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("entry: load config: %w", err)
	}

	logCfg := cfg.Logging
	if level := cmd.String("log-level"); level != "" {
		logCfg.Level = &level
	}
	closeLogger, err := logging.Init(logCfg, logging.InitOptions{App: appName, Version: version})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	snapPath, err := session.DefaultPath()
	if err != nil {
		slog.Warn("state dir unavailable; layout persistence disabled", "err", err)
		snapPath = ""
	}
	var snap *layout.WindowSnapshot
	if cmd.Bool("restore") && snapPath != "" {
		snap, err = session.Load(snapPath)
		if err != nil && !errors.Is(err, session.ErrNoSnapshot) {
			return fmt.Errorf("entry: restore layout: %w", err)
		}
	}

	model, err := tui.New(ctx, tui.Options{
		Config:       cfg,
		Loader:       loader,
		Command:      cmd.String("command"),
		Snapshot:     snap,
		SnapshotPath: snapPath,
	})
	if err != nil {
		return fmt.Errorf("entry: start ui: %w", err)
	}
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("entry: run ui: %w", err)
	}
	return nil
}
