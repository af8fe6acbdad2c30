package gateway

import (
	"context"
	"net/http"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

const disputesCollection = "disputes"

// DisputeService exposes the gateway's dispute endpoints. Disputes are opened
// by the card network, never by the merchant, so there is no Create.
type DisputeService struct {
	d *Dispatcher
}

// NewDisputeService creates a dispute facade over d.
func NewDisputeService(d *Dispatcher) *DisputeService {
	return &DisputeService{d: d}
}

// Get fetches a dispute by ID.
func (s *DisputeService) Get(ctx context.Context, id string) (*domain.Dispute, error) {
	path, err := resourcePath(disputesCollection, id)
	if err != nil {
		return nil, err
	}

	op, err := NewOperation(http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateDispute)
}

// Update submits evidence for a dispute. With an idempotency key, a resend
// with an identical body replays the first response and a resend with a
// different body fails with an idempotency conflict.
func (s *DisputeService) Update(ctx context.Context, id string, req *domain.DisputeUpdateRequest, opts ...domain.RequestOption) (*domain.Dispute, error) {
	path, err := resourcePath(disputesCollection, id)
	if err != nil {
		return nil, err
	}

	o := domain.ApplyRequestOptions(opts...)

	if o.RawBody == nil {
		if req == nil {
			return nil, domain.NewValidationError("request", "is required")
		}

		if err := validateRequest(req); err != nil {
			return nil, err
		}
	}

	op, err := NewOperation(http.MethodPost, path, fromRequestOptions(o, req)...)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateDispute)
}

// Close accepts the dispute as lost.
func (s *DisputeService) Close(ctx context.Context, id string, opts ...domain.RequestOption) (*domain.Dispute, error) {
	path, err := resourcePath(disputesCollection, id, "close")
	if err != nil {
		return nil, err
	}

	op, err := NewOperation(http.MethodPost, path, fromRequestOptions(domain.ApplyRequestOptions(opts...), nil)...)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateDispute)
}

// List returns one page of disputes, newest first.
func (s *DisputeService) List(ctx context.Context, params domain.ListParams) (*domain.ListResult[*domain.Dispute], error) {
	q, err := ListQuery(params)
	if err != nil {
		return nil, err
	}

	op, err := NewOperation(http.MethodGet, "/"+disputesCollection, WithQuery(q))
	if err != nil {
		return nil, err
	}

	return dispatchPage(ctx, s.d, op, params.Limit, translateDispute, disputeID)
}

func disputeID(d *domain.Dispute) string { return d.ID }
