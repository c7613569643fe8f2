package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "value")
	t.Setenv("CFG_TEST_INT", "42")
	t.Setenv("CFG_TEST_BOOL", "true")
	t.Setenv("CFG_TEST_BAD_INT", "nope")

	assert.Equal(t, "value", Env("CFG_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", Env("CFG_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, EnvInt("CFG_TEST_INT", 1))
	assert.Equal(t, 1, EnvInt("CFG_TEST_BAD_INT", 1))
	assert.True(t, EnvBool("CFG_TEST_BOOL", false))
	assert.False(t, EnvBool("CFG_TEST_MISSING", false))
}

func TestLoadDotEnv_DoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DOTENV_TEST_KEY=from_file\n"), 0o600))

	t.Setenv("DOTENV_TEST_KEY", "preexisting")
	require.NoError(t, LoadDotEnv(envPath))
	assert.Equal(t, "preexisting", os.Getenv("DOTENV_TEST_KEY"))
}

func TestLoadDotEnv_LoadsNewKeys(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DOTENV_FRESH_KEY=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DOTENV_FRESH_KEY") })

	require.NoError(t, LoadDotEnv(envPath))
	assert.Equal(t, "loaded", os.Getenv("DOTENV_FRESH_KEY"))
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "does-not-exist.env")))
}
