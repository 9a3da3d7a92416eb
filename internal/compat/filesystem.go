package compat

import (
	"errors"
	"fmt"
	"os"

	"github.com/CosmoTheDev/cmsprobe/models"
)

const (
	probeContent    = "test"
	modifiedContent = "modified"
)

var errNoProbeFile = errors.New("probe file was not created")

// ProbeFilesystem runs the create, read, lock and delete probes in dir. Each
// probe is worth 25 points; a failing probe does not stop the others.
func ProbeFilesystem(dir string) []models.Check {
	if dir == "" {
		dir = os.TempDir()
	}

	var path string
	create := fsCheck("File creation", func() error {
		f, err := os.CreateTemp(dir, "drupal_test_*")
		if err != nil {
			return err
		}
		path = f.Name()
		if _, err := f.WriteString(probeContent); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})

	read := fsCheck("File reading", func() error {
		if path == "" {
			return errNoProbeFile
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if string(data) != probeContent {
			return fmt.Errorf("read back %q, want %q", data, probeContent)
		}
		return nil
	})

	lock := fsCheck("File locking", func() error {
		if path == "" {
			return errNoProbeFile
		}
		return writeLocked(path, []byte(modifiedContent))
	})

	remove := fsCheck("File deletion", func() error {
		if path == "" {
			return errNoProbeFile
		}
		return os.Remove(path)
	})

	return []models.Check{create, read, lock, remove}
}

func fsCheck(name string, probe func() error) models.Check {
	c := models.Check{Name: name, Category: models.CategoryFilesystem, Weight: 25}
	if err := probe(); err != nil {
		c.Status = models.StatusFail
		c.Detail = "Failed"
		c.Error = err.Error()
		return c
	}
	c.Score = 100
	c.Status = models.StatusPass
	c.Detail = "Working"
	return c
}
