// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultGatewayBaseURL is the production gateway endpoint.
	DefaultGatewayBaseURL = "https://api.shift4.com"

	// DefaultGatewayUserAgent identifies the client to the gateway.
	DefaultGatewayUserAgent = "gateway-client-go"

	// DefaultCircuitMaxFailures is the default failures before circuit opens.
	DefaultCircuitMaxFailures = 5

	// DefaultCircuitHalfOpenLimit is the default successes to close circuit.
	DefaultCircuitHalfOpenLimit = 3

	// DefaultTransportMaxIdleConns is the default max idle connections.
	DefaultTransportMaxIdleConns = 100

	// DefaultTransportMaxIdleConnsPerHost is the default max idle connections per host.
	DefaultTransportMaxIdleConnsPerHost = 10

	// DefaultTransportIdleConnTimeout is the default idle connection timeout.
	DefaultTransportIdleConnTimeout = 90 * time.Second

	// DefaultPollAttempts matches the number of status checks made while
	// waiting for a dispute to be opened.
	DefaultPollAttempts = 30

	// DefaultSandboxPort is where the local sandbox gateway listens.
	DefaultSandboxPort = 8089

	// DefaultSandboxMaxRequestSize caps sandbox request bodies (1 MiB).
	DefaultSandboxMaxRequestSize = 1 << 20

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Gateway   GatewayConfig   `koanf:"gateway"   validate:"required"`
	Poll      PollConfig      `koanf:"poll"      validate:"required"`
	Sandbox   SandboxConfig   `koanf:"sandbox"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// GatewayConfig contains settings for the payment gateway connection.
type GatewayConfig struct {
	BaseURL        string               `koanf:"base_url"        validate:"required,url"`
	SecretKey      string               `koanf:"secret_key"      validate:"required"`
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	UserAgent      string               `koanf:"user_agent"      validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// CircuitBreakerConfig contains circuit breaker settings for the gateway client.
// The breaker never retries; when open it fails calls without sending them.
type CircuitBreakerConfig struct {
	Enabled       bool          `koanf:"enabled"`
	MaxFailures   int           `koanf:"max_failures"    validate:"required_if=Enabled true,omitempty,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required_if=Enabled true,omitempty,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required_if=Enabled true,omitempty,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// PollConfig controls callers that wait for asynchronous gateway state.
type PollConfig struct {
	Attempts int           `koanf:"attempts" validate:"required,min=1,max=1000"`
	Interval time.Duration `koanf:"interval" validate:"required,min=10ms"`
}

// SandboxConfig configures the local sandbox gateway. Zero values fall back
// to the server defaults.
type SandboxConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"             validate:"omitempty,min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"omitempty,min=1024"`

	// DisputeDelay is how long after a charge on the dispute test card the
	// sandbox opens a dispute for it.
	DisputeDelay time.Duration `koanf:"dispute_delay"`

	// LedgerPath stores idempotency records in a bolt file. Empty keeps
	// them in memory.
	LedgerPath string `koanf:"ledger_path"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "gatewayctl",
		"app.version":     "dev",
		"app.environment": "local",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/gatewayctl.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "gatewayctl",
		"telemetry.sampling_rate": 1.0,

		"gateway.base_url":                          DefaultGatewayBaseURL,
		"gateway.secret_key":                        "",
		"gateway.timeout":                           "30s",
		"gateway.user_agent":                        DefaultGatewayUserAgent,
		"gateway.circuit_breaker.enabled":           false,
		"gateway.circuit_breaker.max_failures":      DefaultCircuitMaxFailures,
		"gateway.circuit_breaker.timeout":           "30s",
		"gateway.circuit_breaker.half_open_limit":   DefaultCircuitHalfOpenLimit,
		"gateway.transport.max_idle_conns":          DefaultTransportMaxIdleConns,
		"gateway.transport.max_idle_conns_per_host": DefaultTransportMaxIdleConnsPerHost,
		"gateway.transport.idle_conn_timeout":       "90s",

		"poll.attempts": DefaultPollAttempts,
		"poll.interval": "1s",

		"sandbox.host":             "127.0.0.1",
		"sandbox.port":             DefaultSandboxPort,
		"sandbox.read_timeout":     "10s",
		"sandbox.write_timeout":    "10s",
		"sandbox.idle_timeout":     "60s",
		"sandbox.shutdown_timeout": "10s",
		"sandbox.max_request_size": DefaultSandboxMaxRequestSize,
		"sandbox.dispute_delay":    "2s",
		"sandbox.ledger_path":      "",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// APP_GATEWAY__SECRET_KEY -> gateway.secret_key. A double underscore
	// separates levels so keys may keep their own underscores.
	err = k.Load(env.Provider("APP_", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps an APP_ environment variable name to a config key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "APP_"))
	if strings.Contains(key, "__") {
		return strings.ReplaceAll(key, "__", ".")
	}

	return strings.ReplaceAll(key, "_", ".")
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
