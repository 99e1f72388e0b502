package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommandIsQuietByDefault(t *testing.T) {
	t.Parallel()

	env := newTestEnvironment(testHome, nil)

	output, err := executeCommand(t, newRootCommand(env), "init")

	require.NoError(t, err)
	assert.Empty(t, output)

	exists, err := afero.Exists(env.fs, filepath.Join(dataDir(), "time.data"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInitCommandVerbose(t *testing.T) {
	t.Parallel()

	env := newTestEnvironment(testHome, nil)

	output, err := executeCommand(t, newRootCommand(env), "init", "--verbose")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, []string{
		"created " + dataDir(),
		"created " + filepath.Join(dataDir(), "task.completed"),
		"created " + filepath.Join(dataDir(), "task.data"),
		"created " + filepath.Join(dataDir(), "time.completed"),
		"created " + filepath.Join(dataDir(), "time.data"),
	}, lines)

	// Second run has nothing left to create
	output, err = executeCommand(t, newRootCommand(env), "init", "-v")
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestInitCommandKeepsExistingContent(t *testing.T) {
	t.Parallel()

	env := newTestEnvironment(testHome, nil)
	taskData := filepath.Join(dataDir(), "task.data")
	require.NoError(t, afero.WriteFile(env.fs, taskData, []byte("existing"), 0o600))

	output, err := executeCommand(t, newRootCommand(env), "init", "-v")
	require.NoError(t, err)
	assert.NotContains(t, output, taskData)

	got, err := afero.ReadFile(env.fs, taskData)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(got))
}
