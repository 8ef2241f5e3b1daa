//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// killGroup starts the child in its own process group and makes context
// cancellation kill the whole group, so shells and their children go together.
func killGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
}
