// Package gateway is the Shift4 gateway adapter. It translates between the
// gateway's wire format and domain types, and is the only package that knows
// the gateway's paths, query names and error envelope.
//
// # Layers
//
//   - [Operation] describes one request: method, path, query, body bytes and
//     an optional idempotency key.
//   - [Dispatcher] sends an Operation exactly once and decodes the reply into
//     a caller-supplied value or a [domain.GatewayError].
//   - [ChargeService] and [DisputeService] are thin facades that build
//     Operations and translate wire DTOs into domain entities.
//
// # Errors
//
// Every failure is one of three shapes:
//
//   - [*domain.GatewayError] when the gateway answered with a non-2xx status
//     or a body that could not be decoded.
//   - [*domain.TransportError] when no response was received.
//   - [*domain.ValidationError] when the request was rejected before sending.
//
// Nothing in this package retries. A request carrying an idempotency key may
// be resent by the caller with the same key and the same body; the gateway
// then replays its original response.
package gateway
