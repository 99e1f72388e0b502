package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/hammer/internal/constants"
)

func TestInspectBeforeInit(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	manager := newTestManager(fs)

	status, err := manager.Inspect()
	require.NoError(t, err)

	assert.Equal(t, testDataDir(), status.DataDir)
	assert.False(t, status.DirExists)
	assert.False(t, status.Ready())
	require.Len(t, status.Files, 4)
	for _, f := range status.Files {
		assert.False(t, f.Exists)
	}

	// Inspect must not create anything
	exists, err := afero.Exists(fs, testDataDir())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInspectAfterInit(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	manager := newTestManager(fs)

	_, err := manager.Init(context.Background())
	require.NoError(t, err)

	taskData := filepath.Join(testDataDir(), constants.TaskDataFilename)
	require.NoError(t, afero.WriteFile(fs, taskData, []byte("12345"), 0o600))

	status, err := manager.Inspect()
	require.NoError(t, err)

	assert.True(t, status.DirExists)
	assert.True(t, status.Ready())
	for _, f := range status.Files {
		assert.True(t, f.Exists, f.Name)
		assert.True(t, f.IsRegular, f.Name)
		if f.Name == constants.TaskDataFilename {
			assert.Equal(t, int64(5), f.Size)
		} else {
			assert.Zero(t, f.Size, f.Name)
		}
	}
}

func TestStatusReady(t *testing.T) {
	t.Parallel()

	complete := []FileStatus{{Name: "a", Exists: true, IsRegular: true}}

	tests := []struct {
		name  string
		input Status
		want  bool
	}{
		{name: "missing directory", input: Status{DirExists: false, Files: complete}, want: false},
		{name: "all present", input: Status{DirExists: true, Files: complete}, want: true},
		{
			name:  "missing file",
			input: Status{DirExists: true, Files: []FileStatus{{Name: "a"}}},
			want:  false,
		},
		{
			name:  "directory in place of file",
			input: Status{DirExists: true, Files: []FileStatus{{Name: "a", Exists: true}}},
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.input.Ready())
		})
	}
}

func TestLayoutCreatedPaths(t *testing.T) {
	t.Parallel()

	layout := Layout{
		DataDir:        "/d",
		DataDirCreated: true,
		Files: []TrackingFile{
			{Name: "a", Path: "/d/a", Created: true},
			{Name: "b", Path: "/d/b"},
		},
	}

	assert.Equal(t, []string{"/d", "/d/a"}, layout.CreatedPaths())
}
