// Package dto holds the sandbox gateway's wire shapes: the error envelope,
// entity bodies with unix-second timestamps, and list pages.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/gateway-client/internal/domain"
	"github.com/jsamuelsen/gateway-client/internal/platform/logging"
)

// ErrorResponse is the gateway error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is the body of the envelope.
type ErrorDetail struct {
	Type     string `json:"type"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
	ChargeID string `json:"chargeId,omitempty"`
}

// Messages the sandbox shares with the live gateway.
const (
	MessageInternal       = "An internal error occurred."
	MessageUnauthorized   = "Provide a valid secret key."
	MessageUnknownRoute   = "Unrecognized request URL."
	MessageMalformedJSON  = "Request body is not valid JSON."
	MessageMethodNotFound = "Method not allowed for this URL."
)

// NewErrorResponse creates an envelope of the given type.
func NewErrorResponse(kind, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    kind,
			Message: message,
		},
	}
}

// WithCode sets the detail code.
func (e *ErrorResponse) WithCode(code string) *ErrorResponse {
	e.Error.Code = code
	return e
}

// WithChargeID sets the related charge.
func (e *ErrorResponse) WithChargeID(id string) *ErrorResponse {
	e.Error.ChargeID = id
	return e
}

// HTTPStatusFromType maps an error type to the status the gateway uses for it.
func HTTPStatusFromType(kind string) int {
	switch kind {
	case domain.KindInvalidRequest:
		return http.StatusBadRequest
	case domain.KindCardError:
		return http.StatusPaymentRequired
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// MapError converts an error into a status and envelope. Errors that are
// neither gateway nor validation errors get a generic message so internals
// never leak.
func MapError(err error) (int, *ErrorResponse) {
	if gwErr, ok := domain.AsGatewayError(err); ok {
		status := gwErr.StatusCode
		if status == 0 {
			status = HTTPStatusFromType(gwErr.Type)
		}

		return status, NewErrorResponse(gwErr.Type, gwErr.Message).
			WithCode(gwErr.Code).
			WithChargeID(gwErr.ChargeID)
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, NewErrorResponse(domain.KindInvalidRequest, envelopeMessage(validationErr))
	}

	return http.StatusInternalServerError, NewErrorResponse(domain.KindGatewayError, MessageInternal)
}

// HandleError writes the envelope for err.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	logError(c, status, err)
	c.JSON(status, resp)
}

// AbortWithError writes the envelope for err and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	status, resp := MapError(err)
	logError(c, status, err)
	c.AbortWithStatusJSON(status, resp)
}

func logError(c *gin.Context, status int, err error) {
	if status < http.StatusInternalServerError {
		return
	}

	logging.FromContext(c.Request.Context()).Error("internal error",
		slog.Any("error", err),
		slog.String("path", c.Request.URL.Path),
	)
}

// envelopeMessage phrases a validation failure the way the gateway does.
func envelopeMessage(e *domain.ValidationError) string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + " " + e.Message
}
