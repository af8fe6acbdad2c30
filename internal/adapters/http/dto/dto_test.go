package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(domain.KindCardError, "The card was declined.").
		WithCode("card_declined").
		WithChargeID("char_1")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{"type":"card_error","code":"card_declined","message":"The card was declined.","chargeId":"char_1"}}`, string(raw))
}

func TestNewErrorResponse_OmitsEmptyOptionalFields(t *testing.T) {
	raw, err := json.Marshal(NewErrorResponse(domain.KindNotFound, "Charge not found."))
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{"type":"not_found","message":"Charge not found."}}`, string(raw))
}

func TestHTTPStatusFromType(t *testing.T) {
	tests := []struct {
		kind     string
		expected int
	}{
		{domain.KindInvalidRequest, http.StatusBadRequest},
		{domain.KindCardError, http.StatusPaymentRequired},
		{domain.KindAuthentication, http.StatusUnauthorized},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindRateLimited, http.StatusTooManyRequests},
		{domain.KindGatewayError, http.StatusInternalServerError},
		{"something_new", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusFromType(tt.kind))
		})
	}
}

func TestMapError(t *testing.T) {
	declined := domain.NewGatewayError(domain.KindCardError, "The card was declined.")
	declined.Code = "card_declined"
	declined.ChargeID = "char_1"

	throttled := domain.NewGatewayError(domain.KindRateLimited, "Slow down.")
	throttled.StatusCode = http.StatusServiceUnavailable

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expected       ErrorDetail
	}{
		{
			name:           "gateway error uses type status",
			err:            declined,
			expectedStatus: http.StatusPaymentRequired,
			expected:       ErrorDetail{Type: domain.KindCardError, Code: "card_declined", Message: "The card was declined.", ChargeID: "char_1"},
		},
		{
			name:           "explicit status wins",
			err:            throttled,
			expectedStatus: http.StatusServiceUnavailable,
			expected:       ErrorDetail{Type: domain.KindRateLimited, Message: "Slow down."},
		},
		{
			name:           "validation error with field",
			err:            domain.NewValidationError("amount", "must be greater than 0"),
			expectedStatus: http.StatusBadRequest,
			expected:       ErrorDetail{Type: domain.KindInvalidRequest, Message: "amount must be greater than 0"},
		},
		{
			name:           "validation error without field",
			err:            domain.NewValidationError("", MessageMalformedJSON),
			expectedStatus: http.StatusBadRequest,
			expected:       ErrorDetail{Type: domain.KindInvalidRequest, Message: MessageMalformedJSON},
		},
		{
			name:           "unknown error hides details",
			err:            errors.New("database password is hunter2"),
			expectedStatus: http.StatusInternalServerError,
			expected:       ErrorDetail{Type: domain.KindGatewayError, Message: MessageInternal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expected, resp.Error)
		})
	}
}

func TestMapError_ValidatorFailure(t *testing.T) {
	err := Validate(&domain.ChargeRequest{Amount: 100, Currency: "US", CustomerID: "cust_1"})
	require.Error(t, err)

	status, resp := MapError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrorDetail{Type: domain.KindInvalidRequest, Message: "currency must have length 3"}, resp.Error)
}

func TestHandleError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/charges/char_x", nil)

	HandleError(c, domain.NewGatewayError(domain.KindNotFound, "Charge not found."))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"type":"not_found","message":"Charge not found."}}`, w.Body.String())
	assert.False(t, c.IsAborted())
}

func TestAbortWithError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/charges", nil)

	AbortWithError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		field   string
		message string
	}{
		{
			name:  "valid charge",
			req:   &domain.ChargeRequest{Amount: 100, Currency: "USD", CustomerID: "cust_1"},
			field: "",
		},
		{
			name:    "zero amount",
			req:     &domain.ChargeRequest{Currency: "USD", CustomerID: "cust_1"},
			field:   "amount",
			message: "must be greater than 0",
		},
		{
			name:    "currency length",
			req:     &domain.ChargeRequest{Amount: 100, Currency: "US", CustomerID: "cust_1"},
			field:   "currency",
			message: "must have length 3",
		},
		{
			name:    "card or customer required",
			req:     &domain.ChargeRequest{Amount: 100, Currency: "USD"},
			field:   "card",
			message: "is required",
		},
		{
			name: "nested card number",
			req: &domain.ChargeRequest{
				Amount:   100,
				Currency: "USD",
				Card:     &domain.CardRequest{Number: "42x", ExpMonth: "1", ExpYear: "2030"},
			},
			field:   "card.number",
			message: "must be numeric",
		},
		{
			name:    "dispute evidence required",
			req:     &domain.DisputeUpdateRequest{},
			field:   "evidence",
			message: "is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"amount":100,"currency":"USD","customerId":"cust_1"}`},
		{name: "malformed", body: `{"amount":`, wantErr: MessageMalformedJSON},
		{name: "wrong type", body: `{"amount":"lots"}`, wantErr: MessageMalformedJSON},
		{name: "invalid", body: `{"amount":0,"currency":"USD","customerId":"cust_1"}`, wantErr: "must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/charges", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req domain.ChargeRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, int64(100), req.Amount)

				return
			}

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBindListParams(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    domain.ListParams
		wantErr string
	}{
		{
			name:  "empty",
			query: "",
			want:  domain.ListParams{},
		},
		{
			name:  "cursor and count",
			query: "limit=5&startingAfterId=dp_1&includeTotalCount=true",
			want:  domain.ListParams{Limit: 5, StartingAfterID: "dp_1", IncludeTotalCount: true},
		},
		{
			name:    "negative limit",
			query:   "limit=-1",
			wantErr: "must be at least 0",
		},
		{
			name:    "conflicting cursors",
			query:   "startingAfterId=dp_1&endingBeforeId=dp_2",
			wantErr: "startingAfterId",
		},
		{
			name:    "bad created bound",
			query:   "created%5Blte%5D=tomorrow",
			wantErr: "must be a unix timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/disputes?"+tt.query, nil)

			params, err := BindListParams(c)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestBindListParams_CreatedRange(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/charges?created%5Bgte%5D=1700000000&created%5Blte%5D=1700003600", nil)

	params, err := BindListParams(c)
	require.NoError(t, err)

	require.NotNil(t, params.CreatedGte)
	require.NotNil(t, params.CreatedLte)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), *params.CreatedGte)
	assert.Equal(t, time.Unix(1700003600, 0).UTC(), *params.CreatedLte)
}

func TestNewChargeResponse(t *testing.T) {
	created := time.Unix(1700000000, 0).UTC()

	resp := NewChargeResponse(&domain.Charge{
		ID:       "char_1",
		Created:  created,
		Amount:   500,
		Currency: "EUR",
		Status:   domain.ChargeStatusSuccessful,
		Card:     &domain.Card{ID: "card_1", First6: "424242", Last4: "4242"},
	})

	assert.Equal(t, int64(1700000000), resp.Created)
	assert.Equal(t, "successful", resp.Status)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "4242", resp.Card.Last4)

	assert.Zero(t, NewChargeResponse(&domain.Charge{ID: "char_2"}).Created)
}

func TestNewDisputeResponse(t *testing.T) {
	due := time.Unix(1700600000, 0).UTC()

	resp := NewDisputeResponse(&domain.Dispute{
		ID:     "dp_1",
		Status: domain.DisputeStatusChargebackNew,
		Reason: domain.DisputeReasonFraudulent,
		EvidenceDetails: &domain.EvidenceDetails{
			DueBy:           due,
			SubmissionCount: 2,
		},
		Charge: &domain.Charge{ID: "char_1"},
	})

	assert.Equal(t, "CHARGEBACK_NEW", resp.Status)
	assert.Equal(t, "FRAUDULENT", resp.Reason)
	require.NotNil(t, resp.EvidenceDetails)
	assert.Equal(t, int64(1700600000), resp.EvidenceDetails.DueBy)
	assert.Equal(t, 2, resp.EvidenceDetails.SubmissionCount)
	require.NotNil(t, resp.Charge)
	assert.Equal(t, "char_1", resp.Charge.ID)
}

func TestNewListResponse(t *testing.T) {
	total := 7
	page := &domain.ListResult[*domain.Charge]{
		List:       []*domain.Charge{{ID: "char_2"}, {ID: "char_1"}},
		HasMore:    true,
		TotalCount: &total,
	}

	resp := NewListResponse(page, NewChargeResponse)

	require.Len(t, resp.List, 2)
	assert.Equal(t, "char_2", resp.List[0].ID)
	assert.True(t, resp.HasMore)
	assert.Equal(t, &total, resp.TotalCount)

	empty := NewListResponse(&domain.ListResult[*domain.Charge]{}, NewChargeResponse)

	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[],"hasMore":false}`, string(raw))
}
