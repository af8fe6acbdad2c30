// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never wire DTOs
//   - Errors are *domain.GatewayError, *domain.TransportError or
//     *domain.ValidationError, passed through unchanged
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// ChargeClient is the gateway's charge surface.
type ChargeClient interface {
	Create(ctx context.Context, req *domain.ChargeRequest, opts ...domain.RequestOption) (*domain.Charge, error)
	Get(ctx context.Context, id string) (*domain.Charge, error)
	Update(ctx context.Context, id string, req *domain.ChargeUpdateRequest, opts ...domain.RequestOption) (*domain.Charge, error)
	Capture(ctx context.Context, id string, opts ...domain.RequestOption) (*domain.Charge, error)
	List(ctx context.Context, params domain.ListParams) (*domain.ListResult[*domain.Charge], error)
}

// DisputeClient is the gateway's dispute surface. Disputes are opened by the
// card network, so there is no Create.
type DisputeClient interface {
	Get(ctx context.Context, id string) (*domain.Dispute, error)
	Update(ctx context.Context, id string, req *domain.DisputeUpdateRequest, opts ...domain.RequestOption) (*domain.Dispute, error)
	Close(ctx context.Context, id string, opts ...domain.RequestOption) (*domain.Dispute, error)
	List(ctx context.Context, params domain.ListParams) (*domain.ListResult[*domain.Dispute], error)
}

// Sleeper waits between polls. It returns early with ctx.Err() when the
// context ends.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep implements Sleeper.
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// ContextSleeper sleeps on a timer and honors cancellation.
var ContextSleeper = SleeperFunc(func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
})

// IdempotencyRecord is a response remembered under an idempotency key.
type IdempotencyRecord struct {
	// Fingerprint identifies the request (method, path and body) that
	// produced the response.
	Fingerprint string    `json:"fingerprint"`
	Status      int       `json:"status"`
	ContentType string    `json:"contentType"`
	Body        []byte    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IdempotencyLedger stores responses by idempotency key for the sandbox
// gateway.
type IdempotencyLedger interface {
	// Load returns the record for key. found is false when none exists.
	Load(ctx context.Context, key string) (rec *IdempotencyRecord, found bool, err error)

	// Store saves rec under key, replacing any previous record.
	Store(ctx context.Context, key string, rec *IdempotencyRecord) error
}
