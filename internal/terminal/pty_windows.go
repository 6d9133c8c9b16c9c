//go:build windows

package terminal

import "os/exec"

// ConPTY needs no process attributes; xpty handles the pseudo console.
func setupPTYCommand(cmd *exec.Cmd) {}
