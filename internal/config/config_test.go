package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/veil/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.MappingPath)
	assert.Empty(t, cfg.Patterns)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "mapping: aliases.json\npatterns:\n  - email\n  - ssn\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "aliases.json", cfg.MappingPath)
	assert.Equal(t, []string{"email", "ssn"}, cfg.Patterns)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mapping: from-file.json\n"), 0644))

	t.Setenv("VEIL_MAPPING", "from-env.json")
	t.Setenv("VEIL_VERBOSE", "true")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.MappingPath)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mapping: [unclosed"), 0644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}
