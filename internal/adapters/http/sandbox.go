package http

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen/gateway-client/internal/adapters/http/middleware"
	"github.com/jsamuelsen/gateway-client/internal/adapters/storage/ledger"
	"github.com/jsamuelsen/gateway-client/internal/ports"
)

// DefaultSandboxServiceName names the sandbox in spans.
const DefaultSandboxServiceName = "gateway-sandbox"

// Ledger is an idempotency ledger that can report its health.
type Ledger interface {
	ports.IdempotencyLedger
	ports.HealthChecker
}

// SandboxOptions configures a sandbox gateway.
type SandboxOptions struct {
	// SecretKey is required; requests authenticated with any other key
	// are rejected.
	SecretKey string

	Logger      *slog.Logger
	ServiceName string
	BuildInfo   handlers.BuildInfo
	Store       handlers.StoreConfig

	// Ledger defaults to an in-memory ledger.
	Ledger Ledger
}

// Sandbox is a local stand-in for the payment gateway. It speaks the same
// wire format (basic auth, idempotency keys, error envelopes, cursor lists)
// and keeps its state in memory.
type Sandbox struct {
	Store       *handlers.Store
	Registry    *prometheus.Registry
	Health      *ports.DefaultHealthRegistry
	Metrics     *handlers.Metrics
	Idempotency *middleware.IdempotencyMetrics
}

// NewSandbox wires the sandbox routes onto engine.
func NewSandbox(engine *gin.Engine, opts SandboxOptions) (*Sandbox, error) {
	if opts.SecretKey == "" {
		return nil, errors.New("sandbox secret key is required")
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.ServiceName == "" {
		opts.ServiceName = DefaultSandboxServiceName
	}

	if opts.Ledger == nil {
		opts.Ledger = ledger.NewMemory()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	health := ports.NewHealthRegistry()
	if err := health.Register(opts.Ledger); err != nil {
		return nil, fmt.Errorf("registering ledger health check: %w", err)
	}

	sb := &Sandbox{
		Store:       handlers.NewStore(opts.Store),
		Registry:    reg,
		Health:      health,
		Metrics:     handlers.NewMetrics(reg),
		Idempotency: middleware.NewIdempotencyMetrics(reg),
	}

	SetupRouter(engine, RouterConfig{
		Logger:             opts.Logger,
		ServiceName:        opts.ServiceName,
		SecretKey:          opts.SecretKey,
		HealthHandler:      handlers.NewHealthHandler(health, opts.BuildInfo, reg),
		ChargeHandler:      handlers.NewChargeHandler(sb.Store, sb.Metrics),
		DisputeHandler:     handlers.NewDisputeHandler(sb.Store, sb.Metrics),
		Ledger:             opts.Ledger,
		IdempotencyMetrics: sb.Idempotency,
	})

	return sb, nil
}
