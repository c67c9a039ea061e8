package ratelimit

import (
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

// FromSettings builds a limiter configuration from the service's rate limit settings.
func FromSettings(enabled bool, requestsPerMinute, burst int) *Config {
	return &Config{
		Enabled:           enabled,
		RequestsPerMinute: requestsPerMinute,
		Burst:             burst,
		EndpointConfigs:   DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// file uploads decode PDFs and DOCX archives before parsing
		{Path: "/parse/resume/file", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}
