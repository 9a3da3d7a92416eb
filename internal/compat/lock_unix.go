//go:build unix

package compat

import (
	"os"

	"golang.org/x/sys/unix"
)

// writeLocked truncates path and writes data while holding an exclusive flock.
func writeLocked(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		return err
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN) //nolint:errcheck

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
