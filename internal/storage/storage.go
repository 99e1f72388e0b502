// Package storage resolves and initializes hammer's per-user data directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hammer/internal/constants"
	"github.com/wizzomafizzo/hammer/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

var (
	// ErrHomeNotSet is returned when the home environment variable is missing or empty.
	ErrHomeNotSet = errors.New("home directory environment variable is not set")

	// ErrNotDirectory is returned when the data directory path exists but is not a directory.
	ErrNotDirectory = errors.New("path exists but is not a directory")

	// ErrNotRegularFile is returned when a tracking file path exists but is not a regular file.
	ErrNotRegularFile = errors.New("path exists but is not a regular file")
)

// Manager handles data directory operations with filesystem abstraction
type Manager struct {
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
}

// Option configures a Manager
type Option func(*Manager)

// WithLookupEnv replaces os.LookupEnv as the source of the home directory.
func WithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(m *Manager) {
		m.lookupEnv = lookupEnv
	}
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs, opts ...Option) *Manager {
	m := &Manager{
		fs:        fs,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Home returns the home directory taken from the environment.
func (m *Manager) Home() (string, error) {
	home, ok := m.lookupEnv(constants.HomeEnv)
	if !ok || home == "" {
		return "", fmt.Errorf("%w: set %s to your home directory", ErrHomeNotSet, constants.HomeEnv)
	}
	return home, nil
}

// DataDir returns the data directory path without touching the filesystem.
func (m *Manager) DataDir() (string, error) {
	home, err := m.Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, filepath.FromSlash(constants.DataSubPath)), nil
}

// TrackingFilePaths returns the full path of every tracking file.
func (m *Manager) TrackingFilePaths() ([]string, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return nil, err
	}

	names := constants.TrackingFilenames()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dataDir, name))
	}
	return paths, nil
}

// EnsureDataDir creates the data directory and any missing parents.
// It reports whether the directory had to be created.
func (m *Manager) EnsureDataDir() (bool, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return false, err
	}

	info, err := m.fs.Stat(dataDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("data directory %s: %w", dataDir, ErrNotDirectory)
		}
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("failed to stat data directory %s: %w", dataDir, err)
	}

	if err := m.fs.MkdirAll(dataDir, dirPerm); err != nil {
		return false, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return true, nil
}

// Touch creates path as an empty file if it does not exist. Existing files
// are left untouched. It reports whether the file had to be created.
func (m *Manager) Touch(path string) (bool, error) {
	info, err := m.fs.Stat(path)
	switch {
	case err == nil:
		if !info.Mode().IsRegular() {
			return false, fmt.Errorf("tracking file %s: %w", path, ErrNotRegularFile)
		}
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// No O_TRUNC: a file that appeared since the Stat keeps its content.
	f, err := m.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return true, nil
}

// Init ensures the data directory and all tracking files exist.
// Running it again is a no-op for anything already present.
func (m *Manager) Init(ctx context.Context) (*Layout, error) {
	log := logging.Get(ctx)

	dataDir, err := m.DataDir()
	if err != nil {
		return nil, err
	}

	created, err := m.EnsureDataDir()
	if err != nil {
		return nil, err
	}
	if created {
		log.Info().Str("path", dataDir).Msg("created data directory")
	}

	layout := &Layout{DataDir: dataDir, DataDirCreated: created}
	for _, name := range constants.TrackingFilenames() {
		path := filepath.Join(dataDir, name)

		fileCreated, err := m.Touch(path)
		if err != nil {
			return nil, err
		}
		if fileCreated {
			log.Info().Str("path", path).Msg("created tracking file")
		}

		layout.Files = append(layout.Files, TrackingFile{
			Name:    name,
			Path:    path,
			Created: fileCreated,
		})
	}

	log.Debug().
		Str("data_dir", dataDir).
		Int("created", len(layout.CreatedPaths())).
		Msg("data directory initialized")

	return layout, nil
}
