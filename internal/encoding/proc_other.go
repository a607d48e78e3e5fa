//go:build !unix

package encoding

import (
	"os/exec"
	"time"
)

// Without process groups the child is killed directly on cancellation.
func configureProcessGroup(cmd *exec.Cmd, grace time.Duration) func() {
	cmd.WaitDelay = grace
	return func() {}
}

func configureAttached(cmd *exec.Cmd, grace time.Duration) func() {
	cmd.WaitDelay = grace
	return func() {}
}
