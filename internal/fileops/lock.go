package fileops

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"shotname/internal/services"
)

// Lock is an exclusive run lock on one target directory.
type Lock struct {
	lock *flock.Flock
	path string
}

// LockDirectory acquires the run lock for target. Lock files live in
// lockDir, named after a hash of the absolute target path. It fails with
// services.ErrLocked when another run holds the lock.
func LockDirectory(lockDir, target string) (*Lock, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "lock", "resolve target", target, err)
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "lock", "create lock directory", lockDir, err)
	}
	sum := sha256.Sum256([]byte(abs))
	path := filepath.Join(lockDir, hex.EncodeToString(sum[:8])+".lock")

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "lock", "acquire", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, "lock", "acquire", fmt.Sprintf("%s is being processed by another run", abs), nil)
	}
	return &Lock{lock: fl, path: path}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
