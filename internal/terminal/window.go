// Package terminal provides the PTY + VT surface behind a pane: it spawns
// the shell on a pseudo-terminal, feeds its output through a VT emulator,
// and exposes an ANSI render for the presentation layer.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/x/vt"
	"github.com/charmbracelet/x/xpty"
	"github.com/kballard/go-shellquote"

	"github.com/termweave/termweave/internal/layout"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// emulator is the subset of the VT emulator API Window depends on. The
// Reader side carries terminal query responses (DSR/DA) back to the PTY;
// it blocks until the emulator is closed, so Close must be called to
// release the response pump.
type emulator interface {
	io.Reader
	io.Writer
	Resize(cols, rows int)
	Render() string
	Close() error
}

// Options describes how to start a pane process.
type Options struct {
	ID    string
	Title string

	// Command is parsed shell-style and executed directly (no shell
	// wrapping). Empty means an interactive platform shell.
	Command string
	Dir     string
	Env     []string

	Cols int
	Rows int
}

// Window is a single terminal surface: PTY <-> VT emulator plus the
// state the pane tree asks about (size in cells, focus, exit).
type Window struct {
	id    string
	title atomic.Value // string

	cmd *exec.Cmd
	pty xpty.Pty

	term   emulator
	termMu sync.Mutex // guards term Write/Resize/Render
	ptyMu  sync.Mutex // guards pty pointer swap during close

	cols atomic.Int64
	rows atomic.Int64

	updates chan struct{} // coalesced "something changed" signal

	cancel context.CancelFunc
	wg     sync.WaitGroup

	focused    atomic.Bool
	closed     atomic.Bool
	exited     atomic.Bool
	exitStatus atomic.Int64
}

// Start spawns the pane process on a fresh PTY.
func Start(ctx context.Context, opts Options) (*Window, error) {
	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}

	name, args, err := resolveCommand(opts.Command)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.Command(name, args...)
	cmd.Dir = opts.Dir

	env := os.Environ()
	if len(opts.Env) > 0 {
		env = mergeEnv(env, opts.Env)
	}
	if !hasEnv(env, "TERM") {
		env = append(env, "TERM=xterm-256color")
	}
	if !hasEnv(env, "COLORTERM") {
		env = append(env, "COLORTERM=truecolor")
	}
	env = append(env,
		"TERM_PROGRAM=TERMWEAVE",
		"TERMWEAVE_PANE_ID="+opts.ID,
	)
	cmd.Env = env

	setupPTYCommand(cmd)

	pty, err := xpty.NewPty(cols, rows)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("terminal: create pty: %w", err)
	}
	if err := pty.Start(cmd); err != nil {
		cancel()
		_ = pty.Close()
		return nil, fmt.Errorf("terminal: start process: %w", err)
	}
	_ = pty.Resize(cols, rows)

	w := &Window{
		id:      opts.ID,
		cmd:     cmd,
		pty:     pty,
		term:    vt.NewEmulator(cols, rows),
		updates: make(chan struct{}, 1),
		cancel:  cancel,
	}
	w.cols.Store(int64(cols))
	w.rows.Store(int64(rows))
	title := opts.Title
	if title == "" {
		title = name
	}
	w.title.Store(title)

	w.startIO(ctx)
	w.wg.Add(1)
	go w.waitExit(ctx)

	return w, nil
}

func (w *Window) ID() string { return w.id }

func (w *Window) Title() string {
	if v := w.title.Load(); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (w *Window) SetTitle(title string) { w.title.Store(title) }

func (w *Window) Exited() bool { return w.exited.Load() }

func (w *Window) ExitStatus() int { return int(w.exitStatus.Load()) }

func (w *Window) PID() int {
	if w == nil || w.cmd == nil || w.cmd.Process == nil {
		return 0
	}
	return w.cmd.Process.Pid
}

func (w *Window) Cols() int { return int(w.cols.Load()) }
func (w *Window) Rows() int { return int(w.rows.Load()) }

// Updates returns a coalesced signal channel; the presentation layer
// re-renders the pane when it fires.
func (w *Window) Updates() <-chan struct{} { return w.updates }

// Render returns the current screen as ANSI text.
func (w *Window) Render() string {
	if w == nil {
		return ""
	}
	w.termMu.Lock()
	defer w.termMu.Unlock()
	if w.term == nil {
		return ""
	}
	return w.term.Render()
}

// SendInput forwards user key input to the pane process.
func (w *Window) SendInput(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	pty := w.currentPTY()
	if pty == nil {
		return fmt.Errorf("terminal: pane %s is closed", w.id)
	}
	_, err := pty.Write(data)
	return err
}

// Resize changes the PTY and emulator dimensions.
func (w *Window) Resize(cols, rows int) {
	if w == nil || cols <= 0 || rows <= 0 {
		return
	}
	oldCols := w.cols.Swap(int64(cols))
	oldRows := w.rows.Swap(int64(rows))
	if int(oldCols) == cols && int(oldRows) == rows {
		return
	}
	w.termMu.Lock()
	if w.term != nil {
		w.term.Resize(cols, rows)
	}
	w.termMu.Unlock()
	if pty := w.currentPTY(); pty != nil {
		_ = pty.Resize(cols, rows)
	}
	w.markDirty()
}

// Widget implements layout.Surface; the window itself is the opaque
// presentation handle.
func (w *Window) Widget() layout.Widget { return w }

// Focus implements layout.Surface.
func (w *Window) Focus() { w.focused.Store(true) }

// Blur drops the focus flag; the tree only ever grants focus.
func (w *Window) Blur() { w.focused.Store(false) }

func (w *Window) Focused() bool { return w.focused.Load() }

// Size implements layout.Surface. A TUI cell is the unit, so cell extent
// is 1x1 and the screen extent is the grid size.
func (w *Window) Size() layout.SurfaceSize {
	return layout.SurfaceSize{
		ScreenWidth:  w.Cols(),
		ScreenHeight: w.Rows(),
		CellWidth:    1,
		CellHeight:   1,
	}
}

// Close implements layout.Surface: shuts down goroutines and releases
// the PTY. Safe to call more than once.
func (w *Window) Close() error {
	if w == nil {
		return nil
	}
	if w.closed.Swap(true) {
		return nil
	}

	if w.cancel != nil {
		w.cancel()
	}

	// Closing the PTY unblocks the PTY reader; closing the emulator
	// unblocks the response pump parked in term.Read. Both must happen
	// before the Wait or the pumps never exit.
	w.ptyMu.Lock()
	pty := w.pty
	w.pty = nil
	w.ptyMu.Unlock()
	if pty != nil {
		_ = pty.Close()
	}

	w.termMu.Lock()
	term := w.term
	w.term = nil
	w.termMu.Unlock()
	if term != nil {
		_ = term.Close()
	}

	w.wg.Wait()
	close(w.updates)
	return nil
}

func (w *Window) currentPTY() xpty.Pty {
	w.ptyMu.Lock()
	defer w.ptyMu.Unlock()
	return w.pty
}

func (w *Window) currentTerm() emulator {
	w.termMu.Lock()
	defer w.termMu.Unlock()
	return w.term
}

func (w *Window) startIO(ctx context.Context) {
	// PTY -> VT: screen updates.
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		buf := make([]byte, 32*1024)
		for {
			pty := w.currentPTY()
			if pty == nil {
				return
			}
			n, err := pty.Read(buf)
			if n > 0 {
				w.termMu.Lock()
				if w.term != nil {
					_, _ = w.term.Write(buf[:n])
				}
				w.termMu.Unlock()
				w.markDirty()
			}
			if err != nil || ctx.Err() != nil {
				return
			}
		}
	}()

	// VT -> PTY: terminal query responses (DSR/DA) that full-screen
	// programs wait for.
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		buf := make([]byte, 4096)
		for {
			pty := w.currentPTY()
			term := w.currentTerm()
			if pty == nil || term == nil {
				return
			}
			n, err := term.Read(buf)
			if n > 0 {
				if _, werr := pty.Write(buf[:n]); werr != nil {
					return
				}
			}
			if err != nil || ctx.Err() != nil {
				return
			}
		}
	}()
}

func (w *Window) waitExit(ctx context.Context) {
	defer w.wg.Done()
	if w.cmd == nil {
		return
	}
	_ = xpty.WaitProcess(ctx, w.cmd)
	if w.cmd.ProcessState != nil {
		w.exitStatus.Store(int64(w.cmd.ProcessState.ExitCode()))
	}
	w.exited.Store(true)
	w.markDirty()
}

func (w *Window) markDirty() {
	if w.closed.Load() {
		return
	}
	select {
	case w.updates <- struct{}{}:
	default:
	}
}

// resolveCommand parses a shell-style command line, falling back to an
// interactive platform shell when empty.
func resolveCommand(command string) (string, []string, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return detectShell(), nil, nil
	}
	words, err := shellquote.Split(command)
	if err != nil {
		return "", nil, fmt.Errorf("terminal: parse command %q: %w", command, err)
	}
	if len(words) == 0 {
		return detectShell(), nil, nil
	}
	return words[0], words[1:], nil
}

func detectShell() string {
	if shell := os.Getenv("SHELL"); strings.TrimSpace(shell) != "" {
		return shell
	}
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	for _, s := range []string{"/bin/zsh", "/bin/bash", "/bin/fish", "/bin/sh"} {
		if _, err := os.Stat(s); err == nil {
			return s
		}
	}
	return "/bin/sh"
}

// mergeEnv applies overrides by key (KEY=VALUE).
func mergeEnv(base []string, overrides []string) []string {
	out := append([]string{}, base...)
	index := map[string]int{}
	for i, kv := range out {
		if k := envKey(kv); k != "" {
			index[k] = i
		}
	}
	for _, kv := range overrides {
		k := envKey(kv)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			out[i] = kv
			continue
		}
		index[k] = len(out)
		out = append(out, kv)
	}
	return out
}

func hasEnv(env []string, key string) bool {
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return false
	}
	prefix := key + "="
	for _, kv := range env {
		if strings.HasPrefix(strings.ToUpper(kv), prefix) {
			return true
		}
	}
	return false
}

func envKey(kv string) string {
	kv = strings.TrimSpace(kv)
	if kv == "" {
		return ""
	}
	i := strings.IndexByte(kv, '=')
	if i <= 0 {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(kv[:i]))
}
