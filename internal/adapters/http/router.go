package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen/gateway-client/internal/adapters/http/middleware"
	"github.com/jsamuelsen/gateway-client/internal/ports"
)

// RouterConfig contains everything SetupRouter wires onto the engine.
type RouterConfig struct {
	// Logger is attached to every request context.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// SecretKey is the only key the sandbox accepts.
	SecretKey string

	HealthHandler  *handlers.HealthHandler
	ChargeHandler  *handlers.ChargeHandler
	DisputeHandler *handlers.DisputeHandler

	// Ledger stores responses to requests sent with an Idempotency-Key.
	Ledger             ports.IdempotencyLedger
	IdempotencyMetrics *middleware.IdempotencyMetrics
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Logger - attach the base logger
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - handle distributed tracing correlation
//  5. OpenTelemetry - server spans
//  6. Logging - request logging (skips health endpoints)
//
// Route groups:
//   - /-/ (internal): health endpoints, no auth
//   - / (gateway API): basic auth, then the idempotency ledger
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(),
		middleware.WithLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		otelgin.Middleware(cfg.ServiceName),
		middleware.Logging(),
	)

	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	api := engine.Group("")
	api.Use(
		middleware.BasicAuth(cfg.SecretKey),
		middleware.Idempotency(cfg.Ledger, cfg.IdempotencyMetrics),
	)

	if cfg.ChargeHandler != nil {
		cfg.ChargeHandler.RegisterRoutes(api)
	}

	if cfg.DisputeHandler != nil {
		cfg.DisputeHandler.RegisterRoutes(api)
	}
}
