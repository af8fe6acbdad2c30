package gateway

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderIdempotencyKey carries the caller's idempotency key.
const HeaderIdempotencyKey = "Idempotency-Key"

// NewIdempotencyKey returns a random key suitable for a single logical
// mutation. Keep it and resend it with an identical body to retry safely.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

func isMutating(method string) bool {
	return mutatingMethods[method]
}

// attachIdempotencyKey sets the header when the operation carries a key.
func attachIdempotencyKey(req *http.Request, op *Operation) {
	if op.idempotencyKey != "" {
		req.Header.Set(HeaderIdempotencyKey, op.idempotencyKey)
	}
}
