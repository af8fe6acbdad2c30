// Package app holds workflows that span several gateway calls. Each call
// still goes through the ports unchanged; this layer adds sequencing and
// verification, never retries.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/gateway-client/internal/domain"
	"github.com/jsamuelsen/gateway-client/internal/ports"
)

var (
	// ErrDisputeNotReady is returned when a disputed charge has no visible
	// dispute before polling gives up.
	ErrDisputeNotReady = errors.New("dispute not ready")

	// ErrCloseNotVerified is returned when a closed dispute does not read
	// back as closed.
	ErrCloseNotVerified = errors.New("dispute close not verified")
)

// Default polling, matching one status check per second for half a minute.
const (
	DefaultPollAttempts = 30
	DefaultPollInterval = time.Second
)

// DisputeService runs dispute workflows against the gateway.
type DisputeService struct {
	charges      ports.ChargeClient
	disputes     ports.DisputeClient
	sleeper      ports.Sleeper
	pollAttempts int
	pollInterval time.Duration
	concurrency  int
	exec         *Executor
	logger       *slog.Logger
}

// DisputeServiceConfig contains the service dependencies.
type DisputeServiceConfig struct {
	Charges  ports.ChargeClient
	Disputes ports.DisputeClient

	// Sleeper defaults to ports.ContextSleeper.
	Sleeper ports.Sleeper

	PollAttempts int
	PollInterval time.Duration

	// Concurrency bounds GetMany and CloseMany.
	Concurrency int

	Logger *slog.Logger
}

// NewDisputeService creates a dispute service. It panics without the
// gateway clients.
func NewDisputeService(cfg DisputeServiceConfig) *DisputeService {
	if cfg.Charges == nil || cfg.Disputes == nil {
		panic("app: dispute service requires charge and dispute clients")
	}

	if cfg.Sleeper == nil {
		cfg.Sleeper = ports.ContextSleeper
	}

	if cfg.PollAttempts <= 0 {
		cfg.PollAttempts = DefaultPollAttempts
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "app.DisputeService"))

	return &DisputeService{
		charges:      cfg.Charges,
		disputes:     cfg.Disputes,
		sleeper:      cfg.Sleeper,
		pollAttempts: cfg.PollAttempts,
		pollInterval: cfg.PollInterval,
		concurrency:  cfg.Concurrency,
		exec:         NewExecutor(logger),
		logger:       logger,
	}
}

// AwaitDispute waits for the card network to dispute chargeID. It polls the
// charge until it reports disputed, then looks for the dispute on the first
// page of the dispute list.
func (s *DisputeService) AwaitDispute(ctx context.Context, chargeID string) (*domain.Dispute, error) {
	if chargeID == "" {
		return nil, domain.NewValidationError("chargeID", "is required")
	}

	logger := s.logger.With(slog.String("charge_id", chargeID))

	for attempt := 1; ; attempt++ {
		charge, err := s.charges.Get(ctx, chargeID)
		if err != nil {
			return nil, fmt.Errorf("polling charge %s: %w", chargeID, err)
		}

		if charge.Disputed {
			logger.DebugContext(ctx, "charge disputed", slog.Int("attempt", attempt))

			break
		}

		if attempt >= s.pollAttempts {
			return nil, fmt.Errorf("%w: charge %s not disputed after %d checks", ErrDisputeNotReady, chargeID, attempt)
		}

		if err := s.sleeper.Sleep(ctx, s.pollInterval); err != nil {
			return nil, fmt.Errorf("waiting for dispute on %s: %w", chargeID, err)
		}
	}

	page, err := s.disputes.List(ctx, domain.ListParams{Limit: domain.MaxListLimit})
	if err != nil {
		return nil, fmt.Errorf("listing disputes: %w", err)
	}

	dispute, ok := page.Find(func(d *domain.Dispute) bool { return d.ChargeID() == chargeID })
	if !ok {
		return nil, fmt.Errorf("%w: charge %s is disputed but not in the latest %d disputes",
			ErrDisputeNotReady, chargeID, domain.MaxListLimit)
	}

	logger.InfoContext(ctx, "dispute found", slog.String("dispute_id", dispute.ID))

	return dispute, nil
}

// CloseAndVerify accepts a dispute as lost and reads it back to confirm the
// gateway recorded the close.
func (s *DisputeService) CloseAndVerify(ctx context.Context, id string, opts ...domain.RequestOption) (*domain.Dispute, error) {
	wf := Workflow[string, *domain.Dispute, *domain.Dispute, *domain.Dispute]{
		Name: "close_dispute",
		Validate: func(_ context.Context, id string) error {
			if id == "" {
				return domain.NewValidationError("id", "is required")
			}

			return nil
		},
		Perform: func(ctx context.Context, id string) (*domain.Dispute, error) {
			return s.disputes.Close(ctx, id, opts...)
		},
		Verify: func(ctx context.Context, id string, _ *domain.Dispute) (*domain.Dispute, error) {
			got, err := s.disputes.Get(ctx, id)
			if err != nil {
				return nil, err
			}

			if !got.Status.Closed() || !got.AcceptedAsLost {
				return nil, fmt.Errorf("%w: %s is %s", ErrCloseNotVerified, id, got.Status)
			}

			return got, nil
		},
		Respond: func(_ context.Context, _ string, verified *domain.Dispute) (*domain.Dispute, error) {
			return verified, nil
		},
	}

	return Execute(ctx, s.exec, wf, id)
}

// GetMany fetches disputes concurrently, in the order of ids. The first
// failure cancels the remaining fetches.
func (s *DisputeService) GetMany(ctx context.Context, ids []string) ([]*domain.Dispute, error) {
	fns := make([]func(context.Context) (*domain.Dispute, error), len(ids))
	for i, id := range ids {
		fns[i] = func(ctx context.Context) (*domain.Dispute, error) {
			return s.disputes.Get(ctx, id)
		}
	}

	return ParallelLimit(ctx, s.concurrency, fns...)
}

// CloseMany closes every dispute in ids and reports each outcome. One
// failure does not stop the others.
func (s *DisputeService) CloseMany(ctx context.Context, ids []string) []PartialResult[*domain.Dispute] {
	fns := make([]func(context.Context) (*domain.Dispute, error), len(ids))
	for i, id := range ids {
		fns[i] = func(ctx context.Context) (*domain.Dispute, error) {
			return s.CloseAndVerify(ctx, id)
		}
	}

	results := ParallelPartialLimit(ctx, s.concurrency, fns...)

	for i, r := range results {
		if r.Err != nil {
			s.logger.WarnContext(ctx, "close failed", slog.String("dispute_id", ids[i]), slog.Any("error", r.Err))
		}
	}

	return results
}
