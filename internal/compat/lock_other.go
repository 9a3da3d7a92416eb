//go:build !unix

package compat

import "os"

// writeLocked truncates path and writes data. Advisory locks are not
// available on this platform.
func writeLocked(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
