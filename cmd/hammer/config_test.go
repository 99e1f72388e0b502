package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommandPrintsDefaults(t *testing.T) {
	t.Parallel()

	env := newTestEnvironment(testHome, nil)

	output, err := executeCommand(t, newRootCommand(env), "config", "--config", "/nonexistent.yml")
	require.NoError(t, err)

	assert.Contains(t, output, "logging:")
	assert.Contains(t, output, "level: info")
	assert.Contains(t, output, "max_size: 10")
}

func TestConfigCommandPrintsFileValues(t *testing.T) {
	t.Parallel()

	env := newTestEnvironment(testHome, nil)
	require.NoError(t, afero.WriteFile(env.fs, "/etc/hammer.yml", []byte("logging:\n  level: debug\n  max_age: 7\n"), 0o600))

	output, err := executeCommand(t, newRootCommand(env), "config", "-c", "/etc/hammer.yml")
	require.NoError(t, err)

	assert.Contains(t, output, "level: debug")
	assert.Contains(t, output, "max_age: 7")
	assert.Contains(t, output, "max_backups: 3")
}
