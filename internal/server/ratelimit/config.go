package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the built-in configuration: a lenient global
// limit with tighter per-endpoint limits for the expensive operations.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// NewConfig returns a configuration with the given per-minute limit and
// burst applied to the expensive endpoints.
func NewConfig(perMinute, burst int) *Config {
	cfg := DefaultConfig()
	if perMinute > 0 {
		for i := range cfg.EndpointConfigs {
			cfg.EndpointConfigs[i].Limit = perMinute
			if burst > 0 {
				cfg.EndpointConfigs[i].Burst = burst
			}
		}
	}
	return cfg
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
// Model calls and PDF rendering are the costly operations; parsing and
// scraping are cheaper but still bounded.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze-gaps", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/tailor-resume", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/generate-pdf", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/scrape-job", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/parse-resume", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Path matching supports prefix matching (e.g., "/sessions/" matches "/sessions/{id}").
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are unlimited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
