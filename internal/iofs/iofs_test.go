package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "inatrank"),
		filepath.Join(tmpDir, ".cache", "inatrank"),
		filepath.Join(tmpDir, ".local", "share", "inatrank", "logs"),
		filepath.Join(tmpDir, ".local", "share", "inatrank", "data"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "%s should exist", dir)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	cfgPath := filepath.Join(tmpDir, ".config", "inatrank", "config.yaml")
	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "iconic_taxon")

	// an existing file is never overwritten
	require.NoError(t, os.WriteFile(cfgPath, []byte("edited: true\n"), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	content, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "edited: true\n", string(content))
}

func TestEnsureWeightsFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	wPath := filepath.Join(tmpDir, ".config", "inatrank", "weights.yaml")
	require.NoError(t, EnsureWeightsFile(tmpDir))

	content, err := os.ReadFile(wPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "photo.iqa_technical")
	assert.Contains(t, string(content), "log_scale")
}
