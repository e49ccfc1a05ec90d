package config

import (
	"fmt"
	"time"
)

// HTTPClientConfig configures the transport used for every provider request
type HTTPClientConfig struct {
	MaxRetries        int           `yaml:"max_retries"`
	BaseBackoff       time.Duration `yaml:"base_backoff"`
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`

	// Client side throttling. If RequestsPerMinute is zero, requests are not throttled.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		MaxRetries:        3,
		BaseBackoff:       1000 * time.Millisecond,
		ConnectionTimeout: 10 * time.Second,
		RequestTimeout:    30 * time.Second,
	}
}

func (c *HTTPClientConfig) Validate() error {
	if c.MaxRetries <= 0 {
		return fmt.Errorf("max_retries must be greater than 0, got %d", c.MaxRetries)
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must not be negative, got %d", c.RequestsPerMinute)
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must not be negative, got %d", c.Burst)
	}
	return nil
}
