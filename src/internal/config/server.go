// FILE: ecosnap/src/internal/config/server.go
package config

// ServerConfig configures the HTTP service
type ServerConfig struct {
	Host string `toml:"host"`
	Port int64  `toml:"port"`

	// Largest accepted upload in MB
	MaxUploadMB int64 `toml:"max_upload_mb"`

	ReadTimeoutMS  int64 `toml:"read_timeout_ms"`
	WriteTimeoutMS int64 `toml:"write_timeout_ms"`

	// Rate limiting of uploads
	RateLimit *RateLimitConfig `toml:"rate_limit"`
}

// RateLimitConfig configures per-client token buckets on the upload endpoint
type RateLimitConfig struct {
	// Enable rate limiting
	Enabled bool `toml:"enabled"`

	// Requests per second per client
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst size (token bucket)
	BurstSize int64 `toml:"burst_size"`

	// Idle client limiters are dropped after twice this interval
	CleanupIntervalSec int64 `toml:"cleanup_interval_sec"`
}

// DefaultServerConfig returns the HTTP service defaults
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           "0.0.0.0",
		Port:           8501,
		MaxUploadMB:    10,
		ReadTimeoutMS:  10000,
		WriteTimeoutMS: 10000,
		RateLimit: &RateLimitConfig{
			Enabled:            true,
			RequestsPerSecond:  2,
			BurstSize:          5,
			CleanupIntervalSec: 60,
		},
	}
}
