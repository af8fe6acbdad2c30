package dto

import (
	"time"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// ChargeResponse is a charge as the gateway serializes it.
type ChargeResponse struct {
	ID             string            `json:"id"`
	Created        int64             `json:"created"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amountRefunded"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description,omitempty"`
	Status         string            `json:"status"`
	Card           *CardResponse     `json:"card,omitempty"`
	CustomerID     string            `json:"customerId,omitempty"`
	Captured       bool              `json:"captured"`
	Refunded       bool              `json:"refunded"`
	Disputed       bool              `json:"disputed"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	FailureCode    string            `json:"failureCode,omitempty"`
	FailureMessage string            `json:"failureMessage,omitempty"`
}

// CardResponse never carries the full number or CVC.
type CardResponse struct {
	ID             string `json:"id"`
	First6         string `json:"first6"`
	Last4          string `json:"last4"`
	Fingerprint    string `json:"fingerprint,omitempty"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	CardholderName string `json:"cardholderName,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Type           string `json:"type,omitempty"`
}

// NewChargeResponse converts a domain charge.
func NewChargeResponse(c *domain.Charge) *ChargeResponse {
	resp := &ChargeResponse{
		ID:             c.ID,
		Created:        unixSeconds(c.Created),
		Amount:         c.Amount,
		AmountRefunded: c.AmountRefunded,
		Currency:       c.Currency,
		Description:    c.Description,
		Status:         string(c.Status),
		CustomerID:     c.CustomerID,
		Captured:       c.Captured,
		Refunded:       c.Refunded,
		Disputed:       c.Disputed,
		Metadata:       c.Metadata,
		FailureCode:    c.FailureCode,
		FailureMessage: c.FailureMessage,
	}

	if c.Card != nil {
		resp.Card = &CardResponse{
			ID:             c.Card.ID,
			First6:         c.Card.First6,
			Last4:          c.Card.Last4,
			Fingerprint:    c.Card.Fingerprint,
			ExpMonth:       c.Card.ExpMonth,
			ExpYear:        c.Card.ExpYear,
			CardholderName: c.Card.CardholderName,
			Brand:          c.Card.Brand,
			Type:           c.Card.Type,
		}
	}

	return resp
}

func unixSeconds(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.Unix()
}
