package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Mode)
	assert.Equal(t, uint(9999), c.MaxDistance)
	assert.Equal(t, 1, c.Threads)
	assert.Equal(t, "tsv", c.Output)
	assert.Equal(t, 100000, c.MaxRows)
	assert.Equal(t, "auto", c.MaxMemory)
	assert.False(t, c.CSV)
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CGMLST_DISTS_THREADS", "8")
	t.Setenv("CGMLST_DISTS_CSV", "true")
	t.Setenv("CGMLST_DISTS_MAX_DISTANCE", "50")
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, c.Threads)
	assert.True(t, c.CSV)
	assert.Equal(t, uint(50), c.MaxDistance)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CGMLST_DISTS_MODE=1\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("CGMLST_DISTS_MODE") })

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Mode)
}

func TestBadEnvValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CGMLST_DISTS_THREADS", "many")
	_, err := Load()
	require.Error(t, err)
}
