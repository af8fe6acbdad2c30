package domain

import "time"

// ChargeStatus is the processing state of a charge.
type ChargeStatus string

const (
	ChargeStatusSuccessful ChargeStatus = "successful"
	ChargeStatusPending    ChargeStatus = "pending"
	ChargeStatusFailed     ChargeStatus = "failed"
)

// Charge is a payment attempt against a card.
type Charge struct {
	ID             string            `json:"id"`
	Created        time.Time         `json:"created"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amountRefunded"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description,omitempty"`
	Status         ChargeStatus      `json:"status,omitempty"`
	Card           *Card             `json:"card,omitempty"`
	CustomerID     string            `json:"customerId,omitempty"`
	Captured       bool              `json:"captured"`
	Refunded       bool              `json:"refunded"`
	Disputed       bool              `json:"disputed"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	FailureCode    string            `json:"failureCode,omitempty"`
	FailureMessage string            `json:"failureMessage,omitempty"`
}

// Card is the card a charge was made with, as reported by the gateway.
type Card struct {
	ID             string `json:"id"`
	First6         string `json:"first6,omitempty"`
	Last4          string `json:"last4,omitempty"`
	Fingerprint    string `json:"fingerprint,omitempty"`
	ExpMonth       string `json:"expMonth,omitempty"`
	ExpYear        string `json:"expYear,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Type           string `json:"type,omitempty"`
}

// ChargeRequest is the body of a charge creation request.
// Fields serialize in declaration order.
type ChargeRequest struct {
	Amount      int64             `json:"amount"                validate:"gt=0"`
	Currency    string            `json:"currency"              validate:"required,len=3"`
	Description string            `json:"description,omitempty"`
	CustomerID  string            `json:"customerId,omitempty"`
	Card        *CardRequest      `json:"card,omitempty"        validate:"required_without=CustomerID"`
	Captured    *bool             `json:"captured,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// CardRequest carries raw card data for a charge.
type CardRequest struct {
	Number         string `json:"number"                   validate:"required,numeric,min=12,max=19"`
	ExpMonth       string `json:"expMonth"                 validate:"required"`
	ExpYear        string `json:"expYear"                  validate:"required"`
	Cvc            string `json:"cvc,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
}

// ChargeUpdateRequest is the body of a charge update request.
type ChargeUpdateRequest struct {
	Description string            `json:"description,omitempty"`
	CustomerID  string            `json:"customerId,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
