package gateway

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// Operation is a single gateway request, fully described before it is sent.
// Its body is fixed at construction: what Fingerprint reports is exactly what
// goes on the wire.
type Operation struct {
	method         string
	path           string
	query          url.Values
	body           []byte
	idempotencyKey string
}

// OperationOption configures an Operation.
type OperationOption func(*Operation) error

// NewOperation builds an Operation. It fails with a validation error when
// the method or path is missing, or when an idempotency key is attached to a
// method that does not mutate state.
func NewOperation(method, path string, opts ...OperationOption) (*Operation, error) {
	if method == "" {
		return nil, domain.NewValidationError("method", "is required")
	}

	if path == "" {
		return nil, domain.NewValidationError("path", "is required")
	}

	op := &Operation{
		method: strings.ToUpper(method),
		path:   path,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(op); err != nil {
			return nil, err
		}
	}

	if op.idempotencyKey != "" && !isMutating(op.method) {
		return nil, domain.NewValidationErrorWithValue("idempotencyKey",
			"may only be sent with POST, PUT, PATCH or DELETE", op.method)
	}

	return op, nil
}

// WithJSONBody encodes v as the request body.
func WithJSONBody(v any) OperationOption {
	return func(op *Operation) error {
		body, err := encodeBody(v)
		if err != nil {
			return domain.NewValidationError("body", err.Error())
		}

		op.body = body
		return nil
	}
}

// WithRawBody sends body verbatim. The slice is copied.
func WithRawBody(body []byte) OperationOption {
	return func(op *Operation) error {
		op.body = bytes.Clone(body)
		return nil
	}
}

// WithQuery sets the query parameters. The values are copied.
func WithQuery(q url.Values) OperationOption {
	return func(op *Operation) error {
		if len(q) == 0 {
			return nil
		}

		op.query = make(url.Values, len(q))
		for k, v := range q {
			op.query[k] = append([]string(nil), v...)
		}

		return nil
	}
}

// WithKey attaches an idempotency key. An empty key is ignored.
func WithKey(key string) OperationOption {
	return func(op *Operation) error {
		op.idempotencyKey = key
		return nil
	}
}

// fromRequestOptions turns caller request options into operation options.
// A raw body wins over the encoded value.
func fromRequestOptions(o domain.RequestOptions, v any) []OperationOption {
	opts := []OperationOption{WithKey(o.IdempotencyKey)}

	switch {
	case o.RawBody != nil:
		opts = append(opts, WithRawBody(o.RawBody))
	case v != nil:
		opts = append(opts, WithJSONBody(v))
	}

	return opts
}

// Method returns the HTTP method.
func (op *Operation) Method() string { return op.method }

// Path returns the request path.
func (op *Operation) Path() string { return op.path }

// Query returns a copy of the query parameters.
func (op *Operation) Query() url.Values {
	if op.query == nil {
		return nil
	}

	q := make(url.Values, len(op.query))
	for k, v := range op.query {
		q[k] = append([]string(nil), v...)
	}

	return q
}

// Body returns a copy of the serialized body.
func (op *Operation) Body() []byte {
	return bytes.Clone(op.body)
}

// IdempotencyKey returns the attached key, or "".
func (op *Operation) IdempotencyKey() string { return op.idempotencyKey }

// Mutating reports whether the method changes gateway state.
func (op *Operation) Mutating() bool { return isMutating(op.method) }

// Fingerprint is the hex SHA-256 of the body bytes, or "" for an empty body.
// It only labels logs; the gateway compares bodies itself.
func (op *Operation) Fingerprint() string {
	if len(op.body) == 0 {
		return ""
	}

	sum := sha256.Sum256(op.body)
	return hex.EncodeToString(sum[:])
}

// String returns "METHOD path".
func (op *Operation) String() string {
	return op.method + " " + op.path
}

// resourcePath joins escaped segments under a collection, rejecting empty IDs.
func resourcePath(collection, id string, suffix ...string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", domain.NewValidationError("id", "is required")
	}

	path := "/" + collection + "/" + url.PathEscape(id)
	for _, s := range suffix {
		path += "/" + s
	}

	return path, nil
}

var mutatingMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}
