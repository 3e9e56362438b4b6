// Package config loads settings from an optional YAML file, a .env file and
// DIVINESCRIBE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to every environment override, e.g.
// DIVINESCRIBE_COMPLETION_MODEL.
const EnvPrefix = "DIVINESCRIBE"

// Config holds application configuration. The API credential is not part of
// it; the user types it into the UI each time.
type Config struct {
	Completion Completion `mapstructure:"completion"`
	Sermon     Generation `mapstructure:"sermon"`
	Quiz       Generation `mapstructure:"quiz"`
	Typewriter Typewriter `mapstructure:"typewriter"`
	Notice     Notice     `mapstructure:"notice"`
	Log        Log        `mapstructure:"log"`
	Tracing    Tracing    `mapstructure:"tracing"`
}

// Completion configures the chat-completion endpoint.
type Completion struct {
	Endpoint string        `mapstructure:"endpoint"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"` // 0 means no client timeout
}

// Generation holds sampling parameters for one feature.
type Generation struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Typewriter holds per-rune reveal delays.
type Typewriter struct {
	Delay         time.Duration `mapstructure:"delay"`
	HymnDelay     time.Duration `mapstructure:"hymn_delay"`
	SubtitleDelay time.Duration `mapstructure:"subtitle_delay"`
}

type Notice struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Log configures the file logger. An empty File disables logging.
type Log struct {
	File        string `mapstructure:"file"`
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Tracing struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("completion.endpoint", "https://api.deepseek.com/chat/completions")
	v.SetDefault("completion.model", "deepseek-chat")
	v.SetDefault("completion.timeout", "0s")
	v.SetDefault("sermon.temperature", 0.7)
	v.SetDefault("sermon.max_tokens", 500)
	v.SetDefault("quiz.temperature", 0.7)
	v.SetDefault("quiz.max_tokens", 800)
	v.SetDefault("typewriter.delay", "100ms")
	v.SetDefault("typewriter.hymn_delay", "50ms")
	v.SetDefault("typewriter.subtitle_delay", "40ms")
	v.SetDefault("notice.ttl", "4s")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("tracing.enabled", true)
}

// Load reads configuration. With an empty path it looks for
// divinescribe.yaml in the working directory and in the user config
// directory, and a missing file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("divinescribe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "divinescribe"))
		}
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Completion.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: completion.endpoint %q must be an http(s) URL", ErrInvalidConfig, c.Completion.Endpoint)
	}
	if strings.TrimSpace(c.Completion.Model) == "" {
		return fmt.Errorf("%w: completion.model is empty", ErrInvalidConfig)
	}
	if c.Completion.Timeout < 0 {
		return fmt.Errorf("%w: completion.timeout is negative", ErrInvalidConfig)
	}
	for name, g := range map[string]Generation{"sermon": c.Sermon, "quiz": c.Quiz} {
		if g.MaxTokens <= 0 {
			return fmt.Errorf("%w: %s.max_tokens must be positive", ErrInvalidConfig, name)
		}
		if g.Temperature < 0 || g.Temperature > 2 {
			return fmt.Errorf("%w: %s.temperature must be within [0, 2]", ErrInvalidConfig, name)
		}
	}
	if c.Typewriter.Delay < 0 || c.Typewriter.HymnDelay < 0 || c.Typewriter.SubtitleDelay < 0 {
		return fmt.Errorf("%w: typewriter delays must not be negative", ErrInvalidConfig)
	}
	if c.Notice.TTL < 0 {
		return fmt.Errorf("%w: notice.ttl is negative", ErrInvalidConfig)
	}
	return nil
}
