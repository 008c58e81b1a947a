package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/footprint-tools/cmdkit/internal/paths"
)

const (
	lockFileName     = ".cmdshrc.lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another cmdsh process holds the rc file
// lock for longer than lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// rcLock is an exclusive lock file next to the rc file.
type rcLock struct {
	path string
	file *os.File
}

// WithLock runs fn while holding the rc file lock, so concurrent cmdsh
// processes do not interleave read-modify-write cycles.
func WithLock(fn func() error) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	l := &rcLock{path: filepath.Join(filepath.Dir(configPath), lockFileName)}
	if err := l.acquire(time.Now().Add(lockTimeout)); err != nil {
		return err
	}
	defer l.release()

	return fn()
}

// acquire polls until the lock file can be created exclusively or deadline
// passes.
func (l *rcLock) acquire(deadline time.Time) error {
	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	for {
		l.removeStale()

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		switch {
		case err == nil:
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			l.file = f
			return nil
		case !errors.Is(err, fs.ErrExist):
			return fmt.Errorf("config: lock %s: %w", l.path, err)
		case time.Now().After(deadline):
			return ErrLockTimeout
		}

		<-ticker.C
	}
}

// removeStale deletes a lock left behind by a process that died holding it.
func (l *rcLock) removeStale() {
	info, err := os.Stat(l.path)
	if err == nil && time.Since(info.ModTime()) > staleLockTimeout {
		_ = os.Remove(l.path)
	}
}

func (l *rcLock) release() {
	if l.file != nil {
		_ = l.file.Close()
	}
	_ = os.Remove(l.path)
}
