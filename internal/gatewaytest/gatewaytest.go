// Package gatewaytest runs the sandbox gateway on a loopback listener for
// tests that exercise the client over real HTTP.
package gatewaytest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	sandbox "github.com/jsamuelsen/gateway-client/internal/adapters/http"
	"github.com/jsamuelsen/gateway-client/internal/adapters/http/handlers"
)

// SecretKey is the key the test gateway accepts.
const SecretKey = "sk_test_gatewaytest"

// Test cards, re-exported for callers that only import this package.
const (
	CardSuccess  = handlers.CardSuccess
	CardDeclined = handlers.CardDeclined
	CardDisputed = handlers.CardDisputed
)

// Option configures a test gateway.
type Option func(*sandbox.SandboxOptions)

// WithDisputeDelay sets how long after a charge on CardDisputed its dispute
// appears.
func WithDisputeDelay(d time.Duration) Option {
	return func(o *sandbox.SandboxOptions) {
		o.Store.DisputeDelay = d
	}
}

// WithClock replaces the sandbox clock.
func WithClock(now func() time.Time) Option {
	return func(o *sandbox.SandboxOptions) {
		o.Store.Now = now
	}
}

// WithLedger replaces the in-memory idempotency ledger.
func WithLedger(l sandbox.Ledger) Option {
	return func(o *sandbox.SandboxOptions) {
		o.Ledger = l
	}
}

// Server is a running sandbox gateway.
type Server struct {
	*sandbox.Sandbox

	// URL is the base URL to configure the client with.
	URL string

	// SecretKey is the key the server accepts.
	SecretKey string
}

// New starts a sandbox gateway that is closed when the test ends.
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	o := sandbox.SandboxOptions{
		SecretKey: SecretKey,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(&o)
	}

	engine := gin.New()

	sb, err := sandbox.NewSandbox(engine, o)
	if err != nil {
		t.Fatalf("gatewaytest: starting sandbox: %v", err)
	}

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &Server{
		Sandbox:   sb,
		URL:       srv.URL,
		SecretKey: o.SecretKey,
	}
}
