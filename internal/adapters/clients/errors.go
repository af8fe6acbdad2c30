// Package clients provides the instrumented HTTP transport used to talk to
// the payment gateway.
package clients

import "errors"

// Transport-layer errors. Callers translate them into domain errors; they
// never describe a gateway response.
var (
	// ErrCircuitOpen is returned when the circuit breaker blocks a request.
	// The request was not sent.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrNoBaseURL is returned when a request path cannot be resolved.
	ErrNoBaseURL = errors.New("base url is required")
)
