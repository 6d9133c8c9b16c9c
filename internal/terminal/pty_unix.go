//go:build unix

package terminal

import (
	"os/exec"
	"syscall"
)

// setupPTYCommand makes the PTY the controlling terminal of the child.
// Ctty is the FD number in the child; xpty sets stdin to the PTY slave.
func setupPTYCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0,
	}
}
