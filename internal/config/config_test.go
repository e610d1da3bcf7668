package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, LogModeDev, cfg.LogMode)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogFile, "/tmp/academy.log")
	t.Setenv(EnvLogMode, " PROD ")

	cfg := ConfigFromEnv()
	assert.Equal(t, "/tmp/academy.log", cfg.LogFile)
	assert.Equal(t, LogModeProd, cfg.LogMode)
}

func TestConfigFromEnv_Unset(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvLogMode, "")

	assert.Equal(t, DefaultConfig(), ConfigFromEnv())
}

func TestOverride_FlagsWin(t *testing.T) {
	t.Setenv(EnvLogFile, "/from/env.log")
	t.Setenv(EnvLogMode, "prod")

	cfg := ConfigFromEnv().Override("/from/flag.log", "")
	assert.Equal(t, "/from/flag.log", cfg.LogFile)
	assert.Equal(t, LogModeProd, cfg.LogMode)

	cfg = cfg.Override("", "Dev")
	assert.Equal(t, "/from/flag.log", cfg.LogFile)
	assert.Equal(t, LogModeDev, cfg.LogMode)
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogMode = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "academy.log")
	require.NoError(t, EnsureDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
