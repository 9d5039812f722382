// Package config provides centralized configuration management for the
// application. It loads settings from environment variables with sensible
// defaults and validates the result on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Process  ProcessConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// ProcessConfig holds spreadsheet processing settings.
type ProcessConfig struct {
	// DataDir is the directory that file_path parameters resolve under.
	// Paths escaping it are rejected (default: static)
	DataDir string `env:"PROCESS_DATA_DIR" default:"static"`

	// DefaultFile is the file processed when no file_path is given,
	// relative to DataDir (default: sample.xlsx)
	DefaultFile string `env:"PROCESS_DEFAULT_FILE" default:"sample.xlsx"`

	// DefaultColumns are the columns concatenated when none are given
	DefaultColumns []string `env:"PROCESS_DEFAULT_COLUMNS" default:"Firstname,Lastname"`

	// KeepSourceColumns selects append mode: source columns stay in the
	// output next to the concatenated column (default: false = replace)
	KeepSourceColumns bool `env:"PROCESS_KEEP_SOURCE_COLUMNS" default:"false"`

	// MaxFileSize is the maximum allowed upload size in bytes (default: 10MB)
	MaxFileSize int64 `env:"PROCESS_MAX_FILE_SIZE" default:"10485760"`

	// MaxConcurrent is the maximum number of parallel processing jobs (default: 5)
	MaxConcurrent int `env:"PROCESS_MAX_CONCURRENT" default:"5"`

	// MaxWaitTime is how long to wait for a processing slot (default: 30s)
	MaxWaitTime time.Duration `env:"PROCESS_MAX_WAIT_TIME" default:"30s"`

	// HistorySize is how many recent jobs the history endpoint retains (default: 100)
	HistorySize int `env:"PROCESS_HISTORY_SIZE" default:"100"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// AllowedOrigins are the CORS origins (default: * to match the
	// original deployment; tighten in production)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" default:"*"`

	// RequireAPIKey enables X-API-Key validation (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted API keys
	APIKeys []string `env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
