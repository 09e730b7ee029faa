// File: config_test.go
// Title: Configuration Tests
// Description: Tests for file loading, environment overrides, validation and
//              file watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/cmdsys/foundation/core/error"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, mdwlog.LevelWarn, cfg.General.LogLevel)
	assert.Equal(t, mdwlog.FormatConsole, cfg.General.LogFormat)
	assert.True(t, cfg.Aliases.CaseSensitive)
	assert.Equal(t, 30*time.Second, cfg.Execution.Timeout.Duration)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "cmdsys.toml",
			content: `
[general]
log_level = "debug"
log_format = "json"

[aliases]
case_sensitive = false

[execution]
timeout = "5s"

[metrics]
enabled = true
`,
		},
		{
			name: "yaml",
			file: "cmdsys.yaml",
			content: `
general:
  log_level: debug
  log_format: json
aliases:
  case_sensitive: false
execution:
  timeout: 5s
metrics:
  enabled: true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, mdwlog.LevelDebug, cfg.General.LogLevel)
			assert.Equal(t, mdwlog.FormatJSON, cfg.General.LogFormat)
			assert.False(t, cfg.Aliases.CaseSensitive)
			assert.Equal(t, 5*time.Second, cfg.Execution.Timeout.Duration)
			assert.True(t, cfg.Metrics.Enabled)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "partial.toml", "[metrics]\nenabled = true\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Aliases.CaseSensitive)
	assert.Equal(t, 30*time.Second, cfg.Execution.Timeout.Duration)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CMDSYS_ALIASES_CASE_SENSITIVE", "false")
	t.Setenv("CMDSYS_EXECUTION_TIMEOUT", "2s")
	t.Setenv("CMDSYS_GENERAL_LOG_LEVEL", "error")

	cfg, err := Load(writeFile(t, "cmdsys.toml", "[execution]\ntimeout = \"9s\"\n"))
	require.NoError(t, err)

	assert.False(t, cfg.Aliases.CaseSensitive)
	assert.Equal(t, 2*time.Second, cfg.Execution.Timeout.Duration)
	assert.Equal(t, mdwlog.LevelError, cfg.General.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingConfig))
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.toml", "[general\nlog_level ="))
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "general:\n  log_level: loud\n"))
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	})

	t.Run("non positive timeout", func(t *testing.T) {
		_, err := Load(writeFile(t, "zero.toml", "[execution]\ntimeout = \"0s\"\n"))
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))
	})
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, detectFormat("a.yml"))
	assert.Equal(t, FormatYAML, detectFormat("a.YAML"))
	assert.Equal(t, FormatTOML, detectFormat("a.toml"))
	assert.Equal(t, FormatTOML, detectFormat("a.conf"))
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "cmdsys.toml", "[metrics]\nenabled = false\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	require.NoError(t, Watch(ctx, path, func(cfg *Config) { changes <- cfg }, nil))

	require.NoError(t, os.WriteFile(path, []byte("[metrics]\nenabled = true\n"), 0o644))

	// a write can surface as truncate and write events, wait for the final state
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Metrics.Enabled {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
