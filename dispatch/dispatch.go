package dispatch

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/evtap/evtap/utils"
)

const defaultShell = "/bin/sh"

// ShellDispatcher launches rule commands through the shell, detached from
// the event loop: Dispatch returns as soon as the process has started, and a
// background goroutine reaps it and logs a non-zero exit as a warning.
type ShellDispatcher struct {
	Shell string
}

func NewShellDispatcher() *ShellDispatcher {
	return &ShellDispatcher{Shell: defaultShell}
}

func (d *ShellDispatcher) Dispatch(command string) error {
	cmd := exec.Command(d.Shell, "-c", command)
	// own session, so the command outlives us and a slow command cannot
	// stall frame processing
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	utils.Verbose("dispatched command %q (pid %d)", command, cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			utils.Warn("command %q failed: %v", command, err)
		}
	}()

	return nil
}
