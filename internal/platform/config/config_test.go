package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gatewayctl", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultGatewayBaseURL, cfg.Gateway.BaseURL)
	assert.Equal(t, DefaultGatewayUserAgent, cfg.Gateway.UserAgent)
	assert.Empty(t, cfg.Gateway.SecretKey)
	assert.False(t, cfg.Gateway.CircuitBreaker.Enabled)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_GATEWAY__SECRET_KEY", "sk_test_123")
	t.Setenv("APP_GATEWAY__BASE_URL", "http://localhost:9999")
	t.Setenv("APP_POLL__ATTEMPTS", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "sk_test_123", cfg.Gateway.SecretKey)
	assert.Equal(t, "http://localhost:9999", cfg.Gateway.BaseURL)
	assert.Equal(t, 5, cfg.Poll.Attempts)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Gateway.CircuitBreaker.Timeout)
	assert.Equal(t, 90*time.Second, cfg.Gateway.Transport.IdleConnTimeout)
	assert.Equal(t, time.Second, cfg.Poll.Interval)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "gatewayctl", cfg.App.Name)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")
	t.Setenv("APP_GATEWAY__CIRCUIT_BREAKER__ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
	assert.True(t, cfg.Gateway.CircuitBreaker.Enabled)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/gatewayctl.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "gatewayctl", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRate)
}

// TestLoad_GatewayDefaults tests that gateway client defaults are set correctly.
func TestLoad_GatewayDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultCircuitMaxFailures, cfg.Gateway.CircuitBreaker.MaxFailures)
	assert.Equal(t, DefaultCircuitHalfOpenLimit, cfg.Gateway.CircuitBreaker.HalfOpenLimit)
	assert.Equal(t, DefaultTransportMaxIdleConns, cfg.Gateway.Transport.MaxIdleConns)
	assert.Equal(t, DefaultTransportMaxIdleConnsPerHost, cfg.Gateway.Transport.MaxIdleConnsPerHost)
	assert.Equal(t, DefaultPollAttempts, cfg.Poll.Attempts)
}

// TestLoad_SandboxDefaults tests the local sandbox gateway settings.
func TestLoad_SandboxDefaults(t *testing.T) {
	t.Setenv("APP_SANDBOX__DISPUTE_DELAY", "250ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Sandbox.Host)
	assert.Equal(t, DefaultSandboxPort, cfg.Sandbox.Port)
	assert.Equal(t, int64(DefaultSandboxMaxRequestSize), cfg.Sandbox.MaxRequestSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Sandbox.DisputeDelay)
	assert.Empty(t, cfg.Sandbox.LedgerPath)
}

// TestLoad_DefaultsFailValidationWithoutSecretKey tests that defaults alone
// are not a usable configuration.
func TestLoad_DefaultsFailValidationWithoutSecretKey(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway.secretkey is required")
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "gatewayctl", d["app.name"])
	assert.Equal(t, "dev", d["app.version"])
	assert.Equal(t, "local", d["app.environment"])
	assert.Equal(t, "info", d["log.level"])
	assert.Equal(t, "json", d["log.format"])
	assert.Equal(t, DefaultGatewayBaseURL, d["gateway.base_url"])
	assert.Equal(t, DefaultPollAttempts, d["poll.attempts"])
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"APP_LOG_LEVEL", "log.level"},
		{"APP_TELEMETRY_ENABLED", "telemetry.enabled"},
		{"APP_GATEWAY__SECRET_KEY", "gateway.secret_key"},
		{"APP_GATEWAY__CIRCUIT_BREAKER__MAX_FAILURES", "gateway.circuit_breaker.max_failures"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.expected, envKey(tt.env))
		})
	}
}
