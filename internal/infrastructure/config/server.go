package config

import "time"

// ServerConfig configures the public JSON API
type ServerConfig struct {
	// Listen address (host:port)
	Address string `mapstructure:"address" validate:"required"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// Header carrying the authenticated user id, set by the upstream auth layer
	UserHeader string `mapstructure:"user_header" validate:"required"`

	// Compress responses
	Gzip bool `mapstructure:"gzip"`

	// Per-user rate limit
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds token bucket settings
type RateLimitConfig struct {
	// Sustained requests per second
	Requests int `mapstructure:"requests" validate:"min=1"`

	// Burst size for token bucket
	Burst int `mapstructure:"burst" validate:"min=1"`
}
