// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents runtime configuration that can be loaded from a JSON
// file, environment variables, or CLI flags. All fields are optional;
// missing values use defaults.
type Config struct {
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser fallback for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed output on CLI runs

	// Timeouts in seconds
	ScrapeTimeoutSecs int `json:"scrape_timeout_secs,omitempty"`
	ModelTimeoutSecs  int `json:"model_timeout_secs,omitempty"`
	RenderTimeoutSecs int `json:"render_timeout_secs,omitempty"`

	// Rate limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty"`
	RateLimitBurst     int `json:"rate_limit_burst,omitempty"`
}

// Defaults returns the built-in default configuration.
func Defaults() Config {
	return Config{
		Port:               8080,
		ScrapeTimeoutSecs:  30,
		ModelTimeoutSecs:   120,
		RenderTimeoutSecs:  60,
		RateLimitPerMinute: 60,
		RateLimitBurst:     10,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
// GEMINI_API_KEY carries the model credential; PORT overrides the listen
// port when it parses as an integer.
func FromEnv() Config {
	cfg := Config{APIKey: os.Getenv("GEMINI_API_KEY")}
	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// after merging flags, file, and environment.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.ScrapeTimeoutSecs < 0 || c.ModelTimeoutSecs < 0 || c.RenderTimeoutSecs < 0 {
		return fmt.Errorf("config error: timeouts must be non-negative")
	}
	if c.RateLimitPerMinute < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: rate limit values must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. Flag and file values win over defaults; bool fields are
// not merged since unset cannot be told apart from false.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ScrapeTimeoutSecs == 0 {
		result.ScrapeTimeoutSecs = defaults.ScrapeTimeoutSecs
	}
	if result.ModelTimeoutSecs == 0 {
		result.ModelTimeoutSecs = defaults.ModelTimeoutSecs
	}
	if result.RenderTimeoutSecs == 0 {
		result.RenderTimeoutSecs = defaults.RenderTimeoutSecs
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	return result
}

// ScrapeTimeout returns the job-fetch deadline as a duration.
func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.ScrapeTimeoutSecs) * time.Second
}

// ModelTimeout returns the model-call deadline as a duration.
func (c *Config) ModelTimeout() time.Duration {
	return time.Duration(c.ModelTimeoutSecs) * time.Second
}

// RenderTimeout returns the PDF render deadline as a duration.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSecs) * time.Second
}
