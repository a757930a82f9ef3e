package history

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// LockTimeout is the timeout for acquiring the history lock.
const LockTimeout = 5 * time.Second

// Lock errors.
var (
	ErrLockTimeout  = errors.New("history lock timeout")
	ErrLockFileOpen = errors.New("failed to open history lock file")
)

const filePerms = 0o600

// fileLock represents a held lock on a history file.
type fileLock struct {
	file *os.File
}

// acquireLockWithTimeout takes an exclusive flock on path + ".lock",
// retrying until timeout elapses.
func acquireLockWithTimeout(path string, timeout time.Duration) (*fileLock, error) {
	lockPath := path + ".lock"

	file, openErr := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerms) //nolint:gosec // path is from config
	if openErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLockFileOpen, openErr)
	}

	deadline := time.Now().Add(timeout)

	const retryInterval = 10 * time.Millisecond

	for {
		flockErr := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if flockErr == nil {
			return &fileLock{file: file}, nil
		}

		if !errors.Is(flockErr, unix.EWOULDBLOCK) && !errors.Is(flockErr, unix.EINTR) {
			_ = file.Close()

			return nil, fmt.Errorf("flock %s: %w", lockPath, flockErr)
		}

		if time.Now().After(deadline) {
			_ = file.Close()

			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}

		time.Sleep(retryInterval)
	}
}

// release releases the lock.
func (l *fileLock) release() {
	if l.file != nil {
		_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
		_ = l.file.Close()
	}
}
