package fileutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process already holds the lock.
var ErrLocked = errors.New("locked by another process")

var removeLockFile = os.Remove

// OutputLock is an advisory lock guarding an output file while it is written.
// The lock lives beside the output as "<output>.lock".
type OutputLock struct {
	path string
	lock *flock.Flock
}

// LockOutput acquires the lock for output without waiting.
func LockOutput(output string) (*OutputLock, error) {
	path := output + ".lock"
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", output, ErrLocked)
	}
	return &OutputLock{path: path, lock: lock}, nil
}

// Release removes the lock file and then unlocks it. Removing first means no
// other process can lock the old inode after it has been unlinked.
func (l *OutputLock) Release() error {
	if l == nil {
		return nil
	}
	removeErr := removeLockFile(l.path)
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	if removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
		return fmt.Errorf("remove lock %s: %w", l.path, removeErr)
	}
	return nil
}
