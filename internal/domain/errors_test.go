package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrGateway,
		ErrInvalidRequest,
		ErrCardDeclined,
		ErrGatewayInternal,
		ErrNotFound,
		ErrAuthentication,
		ErrRateLimited,
		ErrDecode,
		ErrTransport,
		ErrValidation,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestGatewayError(t *testing.T) {
	tests := []struct {
		name        string
		err         *GatewayError
		expectedMsg string
		sentinel    error
	}{
		{
			name:        "invalid request",
			err:         &GatewayError{Type: KindInvalidRequest, Message: "Missing amount."},
			expectedMsg: "gateway invalid_request: Missing amount.",
			sentinel:    ErrInvalidRequest,
		},
		{
			name:        "card error with code",
			err:         &GatewayError{Type: KindCardError, Code: "card_declined", Message: "The card was declined."},
			expectedMsg: "gateway card_error (card_declined): The card was declined.",
			sentinel:    ErrCardDeclined,
		},
		{
			name:        "not found",
			err:         &GatewayError{Type: KindNotFound, Message: "Dispute not found."},
			expectedMsg: "gateway not_found: Dispute not found.",
			sentinel:    ErrNotFound,
		},
		{
			name:        "rate limited",
			err:         &GatewayError{Type: KindRateLimited, Message: "Too many requests."},
			expectedMsg: "gateway rate_limited: Too many requests.",
			sentinel:    ErrRateLimited,
		},
		{
			name:        "decode error",
			err:         &GatewayError{Type: KindDecodeError, Message: "unreadable", Raw: []byte("<html>")},
			expectedMsg: "gateway decode_error: unreadable",
			sentinel:    ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrGateway)
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.err.Type, KindOf(tt.err))
		})
	}
}

func TestGatewayError_UnknownKindStillDecodes(t *testing.T) {
	err := NewGatewayError("processing_paused", "Account is paused.")

	require.ErrorIs(t, err, ErrGateway)
	assert.NotErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, "processing_paused", KindOf(err))
	assert.Equal(t, "Account is paused.", err.Message)
}

func TestRegisterKind(t *testing.T) {
	errPaused := errors.New("account paused")

	err := NewGatewayError("account_paused", "Account is paused.")
	assert.NotErrorIs(t, err, errPaused)

	require.NoError(t, RegisterKind("account_paused", errPaused))

	assert.ErrorIs(t, err, errPaused)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestRegisterKind_RejectsEmpty(t *testing.T) {
	err := RegisterKind("", errors.New("x"))
	assert.True(t, IsValidation(err))

	err = RegisterKind("something", nil)
	assert.True(t, IsValidation(err))
}

func TestGatewayError_IdempotencyConflict(t *testing.T) {
	tests := []struct {
		name     string
		err      *GatewayError
		conflict bool
	}{
		{
			name:     "exact conflict",
			err:      NewGatewayError(KindInvalidRequest, IdempotencyConflictMessage),
			conflict: true,
		},
		{
			name:     "other invalid request",
			err:      NewGatewayError(KindInvalidRequest, "Missing amount."),
			conflict: false,
		},
		{
			name:     "same message different kind",
			err:      NewGatewayError(KindGatewayError, IdempotencyConflictMessage),
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, tt.err.IsIdempotencyConflict())
			assert.Equal(t, tt.conflict, IsIdempotencyConflict(fmt.Errorf("update dispute: %w", tt.err)))
		})
	}
}

func TestTransportError(t *testing.T) {
	err := NewTransportError("GET /disputes/dp_1", context.Canceled)

	assert.Equal(t, "transport error during GET /disputes/dp_1: context canceled", err.Error())
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrGateway)
	assert.True(t, IsTransport(err))
	assert.Equal(t, KindTransportError, KindOf(err))

	_, ok := AsGatewayError(err)
	assert.False(t, ok)
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "limit",
			message:     "must be at most 100",
			expectedMsg: "validation failed for limit: must be at most 100",
		},
		{
			name:        "without field",
			field:       "",
			message:     "path is required",
			expectedMsg: "validation failed: path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, KindOf(err))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidationError_WithValue(t *testing.T) {
	err := NewValidationErrorWithValue("limit", "must be at most 100", 250)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 250, validationErr.Value)
}

func TestErrorWrappingChain(t *testing.T) {
	base := &GatewayError{Type: KindNotFound, Message: "Charge not found.", StatusCode: 404}
	wrapped := fmt.Errorf("get charge: %w", fmt.Errorf("dispatch: %w", base))

	assert.True(t, IsNotFound(wrapped))

	gwErr, ok := AsGatewayError(wrapped)
	require.True(t, ok)
	assert.Same(t, base, gwErr)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Empty(t, KindOf(errors.New("boom")))
	assert.Empty(t, KindOf(nil))
}
