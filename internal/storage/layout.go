package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wizzomafizzo/hammer/internal/constants"
)

// TrackingFile describes one tracking file after initialization.
type TrackingFile struct {
	Name    string
	Path    string
	Created bool
}

// Layout is the result of an Init run.
type Layout struct {
	DataDir        string
	Files          []TrackingFile
	DataDirCreated bool
}

// CreatedPaths lists everything the run created, data directory first.
func (l *Layout) CreatedPaths() []string {
	var paths []string
	if l.DataDirCreated {
		paths = append(paths, l.DataDir)
	}
	for _, f := range l.Files {
		if f.Created {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// FileStatus is the observed state of a single tracking file.
type FileStatus struct {
	Name      string
	Path      string
	Size      int64
	Exists    bool
	IsRegular bool
}

// Status is a read-only view of the data directory.
type Status struct {
	DataDir   string
	Files     []FileStatus
	DirExists bool
}

// Ready reports whether the data directory and every tracking file exist.
func (s *Status) Ready() bool {
	if !s.DirExists {
		return false
	}
	for _, f := range s.Files {
		if !f.Exists || !f.IsRegular {
			return false
		}
	}
	return true
}

// Inspect reports the state of the data directory without creating anything.
func (m *Manager) Inspect() (*Status, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return nil, err
	}

	status := &Status{DataDir: dataDir}

	info, err := m.fs.Stat(dataDir)
	switch {
	case err == nil:
		status.DirExists = info.IsDir()
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to stat data directory %s: %w", dataDir, err)
	}

	for _, name := range constants.TrackingFilenames() {
		fileStatus := FileStatus{Name: name, Path: filepath.Join(dataDir, name)}

		info, err := m.fs.Stat(fileStatus.Path)
		switch {
		case err == nil:
			fileStatus.Exists = true
			fileStatus.IsRegular = info.Mode().IsRegular()
			fileStatus.Size = info.Size()
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to stat %s: %w", fileStatus.Path, err)
		}

		status.Files = append(status.Files, fileStatus)
	}

	return status, nil
}
