package domain

import "bytes"

// RequestOptions carries per-call settings for a mutating gateway request.
type RequestOptions struct {
	// IdempotencyKey is forwarded unchanged in the Idempotency-Key header.
	// Empty means no key; one is never generated on the caller's behalf.
	IdempotencyKey string

	// RawBody replaces the encoded request struct with caller bytes, sent
	// verbatim. Use it when the exact body of an earlier keyed request must
	// be reproduced.
	RawBody []byte
}

// RequestOption configures RequestOptions.
type RequestOption func(*RequestOptions)

// WithIdempotencyKey attaches an idempotency key to a mutating request.
func WithIdempotencyKey(key string) RequestOption {
	return func(o *RequestOptions) {
		o.IdempotencyKey = key
	}
}

// WithRawBody sends body instead of encoding the request struct. A nil body
// is ignored; an empty non-nil body is sent as an empty request body.
func WithRawBody(body []byte) RequestOption {
	return func(o *RequestOptions) {
		o.RawBody = bytes.Clone(body)
	}
}

// ApplyRequestOptions folds opts into a RequestOptions value.
func ApplyRequestOptions(opts ...RequestOption) RequestOptions {
	var o RequestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
