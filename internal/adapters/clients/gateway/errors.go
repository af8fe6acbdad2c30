package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// errorResponse accepts both the nested envelope {"error":{...}} and a flat
// {"type":...,"message":...} body.
type errorResponse struct {
	Error    json.RawMessage `json:"error"`
	Type     string          `json:"type"`
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	ChargeID string          `json:"chargeId"`
}

type errorDetail struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	ChargeID string `json:"chargeId"`
}

// DecodeError turns a non-2xx response into a GatewayError. The result always
// has a non-empty Type and Message:
//   - a missing type is inferred from the status code
//   - a missing message falls back to a default for the status
//   - a body that is not a JSON object becomes decode_error carrying Raw
//
// An empty body is treated like an empty envelope.
func DecodeError(status int, payload []byte) *domain.GatewayError {
	detail, ok := parseErrorPayload(payload)
	if !ok {
		return newDecodeError(status, payload, fmt.Errorf("unrecognized error body for HTTP %d", status))
	}

	gwErr := &domain.GatewayError{
		Type:       detail.Type,
		Code:       detail.Code,
		Message:    detail.Message,
		ChargeID:   detail.ChargeID,
		StatusCode: status,
	}

	if gwErr.Type == "" {
		gwErr.Type = kindForStatus(status)
	}

	if gwErr.Message == "" {
		gwErr.Message = defaultMessage(status)
	}

	return gwErr
}

// parseErrorPayload extracts the error fields, preferring the nested form.
func parseErrorPayload(payload []byte) (errorDetail, bool) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return errorDetail{}, true
	}

	var resp errorResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return errorDetail{}, false
	}

	detail := errorDetail{
		Type:     resp.Type,
		Code:     resp.Code,
		Message:  resp.Message,
		ChargeID: resp.ChargeID,
	}

	nested := bytes.TrimSpace(resp.Error)
	if len(nested) == 0 || bytes.Equal(nested, []byte("null")) {
		return detail, true
	}

	// Some proxies answer {"error":"..."}.
	var text string
	if err := json.Unmarshal(nested, &text); err == nil {
		if detail.Message == "" {
			detail.Message = text
		}

		return detail, true
	}

	var inner errorDetail
	if err := json.Unmarshal(nested, &inner); err != nil {
		return errorDetail{}, false
	}

	return mergeDetail(inner, detail), true
}

// mergeDetail fills empty fields of primary from fallback.
func mergeDetail(primary, fallback errorDetail) errorDetail {
	if primary.Type == "" {
		primary.Type = fallback.Type
	}

	if primary.Code == "" {
		primary.Code = fallback.Code
	}

	if primary.Message == "" {
		primary.Message = fallback.Message
	}

	if primary.ChargeID == "" {
		primary.ChargeID = fallback.ChargeID
	}

	return primary
}

// kindForStatus infers an error type when the gateway sent none.
func kindForStatus(status int) string {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return domain.KindInvalidRequest
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.KindAuthentication
	case status == http.StatusNotFound:
		return domain.KindNotFound
	case status == http.StatusTooManyRequests:
		return domain.KindRateLimited
	case status >= http.StatusInternalServerError:
		return domain.KindGatewayError
	default:
		return domain.KindUnknown
	}
}

func defaultMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("gateway returned HTTP %d %s", status, text)
	}

	return fmt.Sprintf("gateway returned HTTP %d", status)
}

// newDecodeError reports a response body that could not be understood.
func newDecodeError(status int, payload []byte, cause error) *domain.GatewayError {
	return &domain.GatewayError{
		Type:       domain.KindDecodeError,
		Message:    cause.Error(),
		StatusCode: status,
		Raw:        append([]byte(nil), payload...),
	}
}
