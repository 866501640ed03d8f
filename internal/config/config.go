package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/stringx"
)

// EnvPrefix prefixes every environment override, e.g. LIBUTILS_LOG_LEVEL.
const EnvPrefix = "LIBUTILS_"

// Config holds the complete application configuration
type Config struct {
	Text   TextConfig   `toml:"text" yaml:"text"`
	Prompt PromptConfig `toml:"prompt" yaml:"prompt"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// TextConfig holds settings for flagged text
type TextConfig struct {
	Flag string `toml:"flag" yaml:"flag"`
}

// PromptConfig holds settings for interactive prompts
type PromptConfig struct {
	MaxAttempts int      `toml:"max_attempts" yaml:"max_attempts"`
	Timeout     Duration `toml:"timeout" yaml:"timeout"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Text:   TextConfig{Flag: string(stringx.DefaultFlag)},
		Prompt: PromptConfig{MaxAttempts: 0},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path yields the defaults plus
// environment overrides. The format is chosen by extension: .yaml and .yml
// are YAML, everything else TOML.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = os.ExpandEnv(path)
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by LIBUTILS_CONFIG. Without it the
// default search paths are tried, and without a file the defaults are used.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPrefix + "CONFIG")
	if path == "" {
		path = Discover(DefaultSearchPaths())
	}
	return Load(path)
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return mdwerrors.ConfigLoadFailed(path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		_, err = toml.Decode(string(data), c)
	}
	if err != nil {
		return mdwerrors.ConfigLoadFailed(path, err)
	}
	return nil
}

// applyEnv overlays LIBUTILS_* variables. lookup is os.LookupEnv outside
// tests.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "TEXT_FLAG"); ok {
		c.Text.Flag = v
	}
	if v, ok := lookup(EnvPrefix + "PROMPT_MAX_ATTEMPTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mdwerrors.ConfigInvalid("prompt.max_attempts", v, "not an integer")
		}
		c.Prompt.MaxAttempts = n
	}
	if v, ok := lookup(EnvPrefix + "PROMPT_TIMEOUT"); ok {
		if err := c.Prompt.Timeout.UnmarshalText([]byte(v)); err != nil {
			return mdwerrors.ConfigInvalid("prompt.timeout", v, "not a duration")
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Text.Flag == "" {
		c.Text.Flag = string(stringx.DefaultFlag)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks every field and returns the first problem found
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Text.Flag) != 1 {
		return mdwerrors.ConfigInvalid("text.flag", c.Text.Flag, "must be exactly one character")
	}
	if c.Prompt.MaxAttempts < 0 {
		return mdwerrors.ConfigInvalid("prompt.max_attempts", c.Prompt.MaxAttempts, "must not be negative")
	}
	if c.Prompt.Timeout.Duration < 0 {
		return mdwerrors.ConfigInvalid("prompt.timeout", c.Prompt.Timeout.String(), "must not be negative")
	}
	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return mdwerrors.ConfigInvalid("log.level", c.Log.Level, "expected debug, info, warn or error")
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return mdwerrors.ConfigInvalid("log.format", c.Log.Format, "expected console or json")
	}
	return nil
}

// FlagRune returns the configured flag character
func (c *Config) FlagRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Text.Flag)
	return r
}

// LoggerConfig converts the log section for core/log. Values are assumed
// to be validated.
func (c *Config) LoggerConfig() mdwlog.Config {
	level, _ := mdwlog.ParseLevel(c.Log.Level)
	format, _ := mdwlog.ParseFormat(c.Log.Format)
	return mdwlog.Config{Level: level, Format: format}
}
