//go:build unix

package encoding

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// configureProcessGroup starts the child in a new process group so that
// cancellation reaches every process ffmpeg spawned. The returned func stops
// the pending SIGKILL once the child has been reaped.
func configureProcessGroup(cmd *exec.Cmd, grace time.Duration) func() {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.WaitDelay = grace

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	cmd.Cancel = func() error {
		pgid := cmd.Process.Pid
		if err := unix.Kill(-pgid, unix.SIGTERM); err != nil {
			if errors.Is(err, unix.ESRCH) {
				return os.ErrProcessDone
			}
			return err
		}
		mu.Lock()
		timer = time.AfterFunc(grace, func() {
			_ = unix.Kill(-pgid, unix.SIGKILL)
		})
		mu.Unlock()
		return nil
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
}

// configureAttached leaves the child in the terminal's process group so it
// still receives keyboard signals directly; cancellation sends SIGTERM to the
// child alone.
func configureAttached(cmd *exec.Cmd, grace time.Duration) func() {
	cmd.WaitDelay = grace
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}
	return func() {}
}
