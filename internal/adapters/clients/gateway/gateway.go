package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/gateway-client/internal/adapters/clients"
	"github.com/jsamuelsen/gateway-client/internal/domain"
	"github.com/jsamuelsen/gateway-client/internal/platform/config"
)

// ServiceName identifies the gateway in logs, spans and metrics.
const ServiceName = "shift4"

// Gateway is a configured gateway client.
type Gateway struct {
	Charges  *ChargeService
	Disputes *DisputeService

	client     *clients.Client
	dispatcher *Dispatcher
}

// New builds a Gateway from configuration. The secret key is sent as the
// basic auth username with an empty password.
func New(cfg *config.GatewayConfig, logger *slog.Logger) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.New("gateway config is required")
	}

	if cfg.SecretKey == "" {
		return nil, domain.NewValidationError("secretKey", "is required")
	}

	secretKey := cfg.SecretKey

	client, err := clients.New(&clients.Config{
		BaseURL:     cfg.BaseURL,
		ServiceName: ServiceName,
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		Circuit:     cfg.CircuitBreaker,
		Transport:   cfg.Transport,
		AuthFunc: func(req *http.Request) {
			req.SetBasicAuth(secretKey, "")
		},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gateway client: %w", err)
	}

	d := NewDispatcher(client)

	return &Gateway{
		Charges:    NewChargeService(d),
		Disputes:   NewDisputeService(d),
		client:     client,
		dispatcher: d,
	}, nil
}

// Dispatcher returns the dispatcher shared by the facades, for endpoints the
// facades do not cover.
func (g *Gateway) Dispatcher() *Dispatcher {
	return g.dispatcher
}

// CircuitState reports the breaker state; always closed when disabled.
func (g *Gateway) CircuitState() clients.State {
	return g.client.CircuitState()
}

// Name implements ports.HealthChecker.
func (g *Gateway) Name() string {
	return ServiceName
}

// Check lists a single charge, which exercises credentials and reachability
// without side effects.
func (g *Gateway) Check(ctx context.Context) error {
	_, err := g.Charges.List(ctx, domain.ListParams{Limit: 1})
	return err
}
