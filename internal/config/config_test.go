package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/libutils/foundation/core/error"
	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
	mdwlog "github.com/msto63/libutils/foundation/core/log"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"zero", "0s", 0, false},
		{"seconds", "30s", 30 * time.Second, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "§", cfg.Text.Flag)
	assert.Equal(t, '§', cfg.FlagRune())
	assert.Zero(t, cfg.Prompt.MaxAttempts)
	assert.Zero(t, cfg.Prompt.Timeout.Duration)
	assert.Equal(t, mdwlog.LevelInfo, cfg.LoggerConfig().Level)
	assert.Equal(t, mdwlog.FormatConsole, cfg.LoggerConfig().Format)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "§", cfg.Text.Flag)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "libutils.toml", `
[text]
flag = "|"

[prompt]
max_attempts = 3
timeout = "45s"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, '|', cfg.FlagRune())
	assert.Equal(t, 3, cfg.Prompt.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Prompt.Timeout.Duration)
	assert.Equal(t, mdwlog.LevelDebug, cfg.LoggerConfig().Level)
	assert.Equal(t, mdwlog.FormatJSON, cfg.LoggerConfig().Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "libutils.yaml", `
text:
  flag: "#"
prompt:
  max_attempts: 5
  timeout: 2m
log:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, '#', cfg.FlagRune())
	assert.Equal(t, 5, cfg.Prompt.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Prompt.Timeout.Duration)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "partial.toml", "[prompt]\nmax_attempts = 1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "§", cfg.Text.Flag)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Prompt.MaxAttempts)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeConfigLoadFailed))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "broken.toml", "[text\nflag = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeConfigLoadFailed))
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"two character flag", "[text]\nflag = \"§§\"\n", "text.flag"},
		{"negative attempts", "[prompt]\nmax_attempts = -1\n", "prompt.max_attempts"},
		{"negative timeout", "[prompt]\ntimeout = \"-1s\"\n", "prompt.timeout"},
		{"unknown level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"unknown format", "[log]\nformat = \"xml\"\n", "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "bad.toml", tt.content))
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeConfigInvalid))
			assert.Equal(t, tt.field, mdwerrors.ExtractDetails(err)["field"])
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIBUTILS_TEXT_FLAG", "~")
	t.Setenv("LIBUTILS_PROMPT_MAX_ATTEMPTS", "4")
	t.Setenv("LIBUTILS_PROMPT_TIMEOUT", "10s")
	t.Setenv("LIBUTILS_LOG_LEVEL", "error")
	t.Setenv("LIBUTILS_LOG_FORMAT", "json")

	path := writeConfig(t, "base.toml", "[text]\nflag = \"|\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, '~', cfg.FlagRune())
	assert.Equal(t, 4, cfg.Prompt.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Prompt.Timeout.Duration)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvOverridesInvalid(t *testing.T) {
	env := map[string]string{"LIBUTILS_PROMPT_MAX_ATTEMPTS": "many"}
	cfg := Default()
	err := cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeConfigInvalid))

	env = map[string]string{"LIBUTILS_PROMPT_TIMEOUT": "later"}
	err = Default().applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Error(t, err)
}

func TestApplyEnvNoop(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.applyEnv(noEnv))
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "env.yml", "text:\n  flag: \"*\"\n")
	t.Setenv("LIBUTILS_CONFIG", path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, '*', cfg.FlagRune())
}
