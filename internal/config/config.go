package config

import (
	"errors"
	"time"
)

// Config is the application configuration root.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Gemini GeminiConfig `mapstructure:"gemini"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	StaticDir    string        `mapstructure:"static_dir"`
}

// GeminiConfig holds the upstream API credential, the model fallback
// queue and the dispatcher's retry policy.
type GeminiConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Models     []string      `mapstructure:"models"`      // priority order, first = preferred
	Timeout    time.Duration `mapstructure:"timeout"`     // per upstream attempt
	MaxRetries int           `mapstructure:"max_retries"` // full-queue retry cycles
	RetryDelay time.Duration `mapstructure:"retry_delay"` // wait after a transport error
	CycleDelay time.Duration `mapstructure:"cycle_delay"` // wait before restarting the queue
}

// LogConfig holds zerolog settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// Validate checks the configuration for fatal problems. The process must
// not start without an API key or a model queue.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.Gemini.APIKey == "" {
		return errors.New("gemini api key is required (set GOOGLE_API_KEY)")
	}

	if len(c.Gemini.Models) == 0 {
		return errors.New("gemini model queue must not be empty")
	}

	if c.Gemini.MaxRetries < 0 {
		return errors.New("gemini max_retries must not be negative")
	}

	return nil
}
