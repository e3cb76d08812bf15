package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tablecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Lint)
	assert.Equal(t, cfg, GetCurrentConfig())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	path := writeConfigFile(t, `
verbose: true
lint:
  disabled:
    - TB01
  severity:
    TB02: error
  rules:
    TB02:
      min_length: 8
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"TB01"}, cfg.Lint.Disabled)
	assert.Equal(t, "error", cfg.Lint.Severity["TB02"])
	require.Contains(t, cfg.Lint.Rules, "TB02")
	assert.EqualValues(t, 8, cfg.Lint.Rules["TB02"]["min_length"])
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	path := writeConfigFile(t, "verbose: false\n")
	t.Setenv("TABLECHECK_VERBOSE", "true")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("TABLECHECK_VERBOSE", "true")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--verbose=false"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	path := writeConfigFile(t, "verbose: true\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose, "default flag value must not override the config file")
}

func TestGetLoggerFallback(t *testing.T) {
	logger := GetLogger(context.Background())
	assert.NotNil(t, logger)
}
