package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultLayoutFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	tier1 := filepath.Join("assets", "tier1")
	require.NoError(t, os.MkdirAll(tier1, 0o755))
	for _, n := range []string{"b.png", "a.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(tier1, n), nil, 0o644))
	}

	assert.Equal(t, 0, run([]string{"--no-color"}))

	entries, err := os.ReadDir(tier1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "tier1_01.png", entries[0].Name())
	assert.Equal(t, "tier1_02.png", entries[1].Name())
}

func TestRun_MissingRootSucceeds(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Equal(t, 0, run([]string{"--no-color"}))
}

func TestRun_Errors(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("assets", nil, 0o644))

	assert.Equal(t, 1, run([]string{"--no-color"}), "root is a file")
	assert.Equal(t, 1, run([]string{"unexpected-arg"}))
	assert.Equal(t, 1, run([]string{"--tier", "/abs"}))
	assert.Equal(t, 1, run([]string{"--layout", "missing.yaml"}))
}

func TestRun_BadTierAfterRenamedTier(t *testing.T) {
	chdir(t, t.TempDir())

	tier1 := filepath.Join("assets", "tier1")
	require.NoError(t, os.MkdirAll(tier1, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tier1, "x.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join("assets", "tier2"), nil, 0o644))
	logFile := filepath.Join(t.TempDir(), "run.log")

	assert.Equal(t, 1, run([]string{"--no-color", "--log", logFile}))

	entries, err := os.ReadDir(tier1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tier1_01.png", entries[0].Name(), "tiers before the failing one stay renamed")

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Renaming: ")
	assert.Contains(t, string(b), "[ERROR] tier tier2: tier path is not a directory")
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
