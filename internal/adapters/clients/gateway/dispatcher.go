package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/gateway-client/internal/adapters/clients"
	"github.com/jsamuelsen/gateway-client/internal/domain"
	"github.com/jsamuelsen/gateway-client/internal/platform/logging"
)

// Dispatcher sends Operations to the gateway, one exchange each.
type Dispatcher struct {
	client *clients.Client
}

// NewDispatcher wraps an HTTP client. Panics if client is nil.
func NewDispatcher(client *clients.Client) *Dispatcher {
	if client == nil {
		panic("gateway.NewDispatcher: client is required")
	}

	return &Dispatcher{client: client}
}

// Dispatch sends op and decodes a 2xx body into out; out may be nil to
// discard the body. It returns a *domain.GatewayError for any non-2xx
// response or an undecodable 2xx body, and a *domain.TransportError when no
// response was received. It never retries.
func (d *Dispatcher) Dispatch(ctx context.Context, op *Operation, out any) error {
	if op == nil {
		return domain.NewValidationError("operation", "is required")
	}

	logger := logging.FromContext(ctx).With(
		slog.String("operation", op.String()),
		slog.Bool("idempotent", op.idempotencyKey != ""),
	)
	if fp := op.Fingerprint(); fp != "" {
		logger = logger.With(slog.String("body_sha256", fp))
	}

	req, err := d.client.NewRequest(ctx, op.method, op.path, op.query, op.body)
	if err != nil {
		return domain.NewValidationError("path", err.Error())
	}

	attachIdempotencyKey(req, op)

	resp, err := d.client.Do(ctx, req)
	if err != nil {
		if errors.Is(err, clients.ErrCircuitOpen) {
			logger.WarnContext(ctx, "gateway request not sent", slog.Any("error", err))
		} else {
			logger.ErrorContext(ctx, "gateway request failed", slog.Any("error", err))
		}

		return domain.NewTransportError(op.String(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ErrorContext(ctx, "reading gateway response failed",
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)

		return domain.NewTransportError(op.String(), fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		gwErr := DecodeError(resp.StatusCode, payload)
		logger.WarnContext(ctx, "gateway rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("type", gwErr.Type),
			slog.String("code", gwErr.Code),
		)

		return gwErr
	}

	if out == nil {
		logger.DebugContext(ctx, "gateway request completed", slog.Int("status", resp.StatusCode))
		return nil
	}

	if err := decodeBody(payload, out); err != nil {
		logger.WarnContext(ctx, "undecodable gateway response",
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)

		return newDecodeError(resp.StatusCode, payload, err)
	}

	logger.DebugContext(ctx, "gateway request completed", slog.Int("status", resp.StatusCode))

	return nil
}

// dispatchEntity sends op and translates the decoded DTO.
func dispatchEntity[D any, T any](ctx context.Context, d *Dispatcher, op *Operation, translate Translator[D, T]) (*T, error) {
	var dto D
	if err := d.Dispatch(ctx, op, &dto); err != nil {
		return nil, err
	}

	entity, err := translate(&dto)
	if err != nil {
		return nil, &domain.GatewayError{
			Type:       domain.KindDecodeError,
			Message:    err.Error(),
			StatusCode: http.StatusOK,
		}
	}

	return entity, nil
}

// dispatchPage sends a list op and translates the page.
func dispatchPage[D any, T any](
	ctx context.Context,
	d *Dispatcher,
	op *Operation,
	limit int,
	translate Translator[D, T],
	idOf func(*T) string,
) (*domain.ListResult[*T], error) {
	var page listResponse[D]
	if err := d.Dispatch(ctx, op, &page); err != nil {
		return nil, err
	}

	result, err := translatePage(&page, limit, translate, idOf)
	if err != nil {
		return nil, &domain.GatewayError{
			Type:       domain.KindDecodeError,
			Message:    err.Error(),
			StatusCode: http.StatusOK,
		}
	}

	return result, nil
}
