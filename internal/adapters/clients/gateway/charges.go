package gateway

import (
	"context"
	"net/http"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

const chargesCollection = "charges"

// ChargeService exposes the gateway's charge endpoints.
type ChargeService struct {
	d *Dispatcher
}

// NewChargeService creates a charge facade over d.
func NewChargeService(d *Dispatcher) *ChargeService {
	return &ChargeService{d: d}
}

// Create charges a card or customer. Pass domain.WithIdempotencyKey to make
// the call safe to resend.
func (s *ChargeService) Create(ctx context.Context, req *domain.ChargeRequest, opts ...domain.RequestOption) (*domain.Charge, error) {
	o := domain.ApplyRequestOptions(opts...)

	if o.RawBody == nil {
		if req == nil {
			return nil, domain.NewValidationError("request", "is required")
		}

		if err := validateRequest(req); err != nil {
			return nil, err
		}
	}

	op, err := NewOperation(http.MethodPost, "/"+chargesCollection, fromRequestOptions(o, req)...)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateCharge)
}

// Get fetches a charge by ID.
func (s *ChargeService) Get(ctx context.Context, id string) (*domain.Charge, error) {
	path, err := resourcePath(chargesCollection, id)
	if err != nil {
		return nil, err
	}

	op, err := NewOperation(http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateCharge)
}

// Update changes a charge's description, customer or metadata.
func (s *ChargeService) Update(ctx context.Context, id string, req *domain.ChargeUpdateRequest, opts ...domain.RequestOption) (*domain.Charge, error) {
	path, err := resourcePath(chargesCollection, id)
	if err != nil {
		return nil, err
	}

	o := domain.ApplyRequestOptions(opts...)
	if o.RawBody == nil && req == nil {
		return nil, domain.NewValidationError("request", "is required")
	}

	op, err := NewOperation(http.MethodPost, path, fromRequestOptions(o, req)...)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateCharge)
}

// Capture captures a previously authorized charge.
func (s *ChargeService) Capture(ctx context.Context, id string, opts ...domain.RequestOption) (*domain.Charge, error) {
	path, err := resourcePath(chargesCollection, id, "capture")
	if err != nil {
		return nil, err
	}

	op, err := NewOperation(http.MethodPost, path, fromRequestOptions(domain.ApplyRequestOptions(opts...), nil)...)
	if err != nil {
		return nil, err
	}

	return dispatchEntity(ctx, s.d, op, translateCharge)
}

// List returns one page of charges, newest first.
func (s *ChargeService) List(ctx context.Context, params domain.ListParams) (*domain.ListResult[*domain.Charge], error) {
	q, err := ListQuery(params)
	if err != nil {
		return nil, err
	}

	op, err := NewOperation(http.MethodGet, "/"+chargesCollection, WithQuery(q))
	if err != nil {
		return nil, err
	}

	return dispatchPage(ctx, s.d, op, params.Limit, translateCharge, chargeID)
}

func chargeID(c *domain.Charge) string { return c.ID }
