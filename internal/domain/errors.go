// Package domain contains gateway entities and the error taxonomy shared by
// every layer of the client.
//
// Errors decoded from the gateway are *GatewayError values keyed by their
// `type` discriminator. The set of kinds is open: an unknown type still decodes
// into a *GatewayError carrying the gateway's type and message, and
// RegisterKind lets callers attach a sentinel to a new kind without touching
// the dispatcher. Transport failures are *TransportError and never carry a
// gateway type or message.
package domain

import (
	"errors"
	"fmt"
	"sync"
)

// Error kinds reported by the gateway (or synthesized by the client when the
// gateway could not be understood).
const (
	KindInvalidRequest = "invalid_request"
	KindCardError      = "card_error"
	KindGatewayError   = "gateway_error"
	KindNotFound       = "not_found"
	KindAuthentication = "authentication_error"
	KindRateLimited    = "rate_limited"
	KindUnknown        = "unknown_error"
	KindDecodeError    = "decode_error"
	KindTransportError = "transport_error"
)

// IdempotencyConflictMessage is the gateway-authored message returned when an
// idempotency key is reused with a different request body.
const IdempotencyConflictMessage = "Idempotent key used for request with different parameters."

// Sentinel errors for use with errors.Is().
var (
	// ErrGateway matches every error decoded from a non-success gateway response.
	ErrGateway = errors.New("gateway error")

	// ErrInvalidRequest indicates malformed or conflicting request parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCardDeclined indicates the card was declined by the issuer.
	ErrCardDeclined = errors.New("card declined")

	// ErrGatewayInternal indicates the gateway failed to process the request.
	ErrGatewayInternal = errors.New("gateway internal error")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthentication indicates the credentials were rejected.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRateLimited indicates the gateway throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrDecode indicates a gateway response could not be decoded.
	ErrDecode = errors.New("undecodable gateway response")

	// ErrTransport indicates no response was received from the gateway.
	ErrTransport = errors.New("transport failure")

	// ErrValidation indicates the client rejected a request before sending it.
	ErrValidation = errors.New("validation failed")
)

// kindRegistry maps a gateway error type to the sentinel it unwraps to.
var kindRegistry = struct {
	sync.RWMutex
	sentinels map[string]error
}{
	sentinels: map[string]error{
		KindInvalidRequest: ErrInvalidRequest,
		KindCardError:      ErrCardDeclined,
		KindGatewayError:   ErrGatewayInternal,
		KindNotFound:       ErrNotFound,
		KindAuthentication: ErrAuthentication,
		KindRateLimited:    ErrRateLimited,
		KindDecodeError:    ErrDecode,
	},
}

// RegisterKind associates a gateway error type with a sentinel error so that
// errors.Is(err, sentinel) matches decoded errors of that type.
// Registering an existing kind replaces its sentinel.
func RegisterKind(kind string, sentinel error) error {
	if kind == "" {
		return NewValidationError("kind", "is required")
	}

	if sentinel == nil {
		return NewValidationError("sentinel", "is required")
	}

	kindRegistry.Lock()
	defer kindRegistry.Unlock()
	kindRegistry.sentinels[kind] = sentinel

	return nil
}

func sentinelFor(kind string) error {
	kindRegistry.RLock()
	defer kindRegistry.RUnlock()

	return kindRegistry.sentinels[kind]
}

// GatewayError is a failure reported by the gateway.
// Type and Message are always non-empty.
type GatewayError struct {
	// Type is the gateway's error discriminator (e.g. "invalid_request").
	Type string

	// Code is the optional machine-readable detail code.
	Code string

	// Message is the gateway-authored message, surfaced verbatim.
	Message string

	// ChargeID is set when the failure relates to a specific charge.
	ChargeID string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Raw holds the undecoded payload for decode_error failures.
	Raw []byte
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway %s (%s): %s", e.Type, e.Code, e.Message)
	}

	return fmt.Sprintf("gateway %s: %s", e.Type, e.Message)
}

// Unwrap returns ErrGateway and, when registered, the sentinel for the type.
func (e *GatewayError) Unwrap() []error {
	errs := []error{ErrGateway}
	if sentinel := sentinelFor(e.Type); sentinel != nil {
		errs = append(errs, sentinel)
	}

	return errs
}

// Kind returns the error type discriminator.
func (e *GatewayError) Kind() string {
	return e.Type
}

// IsIdempotencyConflict reports whether the gateway rejected a reused
// idempotency key because the parameters differed.
func (e *GatewayError) IsIdempotencyConflict() bool {
	return e.Type == KindInvalidRequest && e.Message == IdempotencyConflictMessage
}

// NewGatewayError creates a gateway error of the given kind.
func NewGatewayError(kind, message string) *GatewayError {
	return &GatewayError{Type: kind, Message: message}
}

// TransportError is a failure to exchange a request with the gateway.
// It carries no gateway type or message.
type TransportError struct {
	// Operation describes the request, e.g. "POST /charges".
	Operation string

	// Err is the underlying network or context error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Operation, e.Err)
}

// Unwrap returns ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// Kind returns KindTransportError.
func (e *TransportError) Kind() string {
	return KindTransportError
}

// NewTransportError creates a transport error for the given operation.
func NewTransportError(operation string, err error) error {
	return &TransportError{Operation: operation, Err: err}
}

// ValidationError is a request rejected by the client before it was sent.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// KindOf returns the kind of a client error, or "" for foreign errors.
func KindOf(err error) string {
	var kinded interface{ Kind() string }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}

	return ""
}

// AsGatewayError extracts the *GatewayError from err's chain.
func AsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr, true
	}

	return nil, false
}

// IsIdempotencyConflict checks if err is the gateway's idempotency conflict.
func IsIdempotencyConflict(err error) bool {
	gwErr, ok := AsGatewayError(err)

	return ok && gwErr.IsIdempotencyConflict()
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
