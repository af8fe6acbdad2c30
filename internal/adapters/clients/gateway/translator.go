package gateway

import (
	"fmt"
	"time"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// Translator converts a wire DTO into a domain entity, validating it on the
// way in.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice applies translate to every item, stopping at the first error.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]*D, error) {
	result := make([]*D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// chargeDTO is the gateway's charge object. Timestamps are unix seconds.
type chargeDTO struct {
	ID             string            `json:"id"`
	Created        int64             `json:"created"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amountRefunded"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description"`
	Status         string            `json:"status"`
	Card           *cardDTO          `json:"card"`
	Customer       string            `json:"customerId"`
	Captured       bool              `json:"captured"`
	Refunded       bool              `json:"refunded"`
	Disputed       bool              `json:"disputed"`
	Metadata       map[string]string `json:"metadata"`
	FailureCode    string            `json:"failureCode"`
	FailureMessage string            `json:"failureMessage"`
}

type cardDTO struct {
	ID             string `json:"id"`
	First6         string `json:"first6"`
	Last4          string `json:"last4"`
	Fingerprint    string `json:"fingerprint"`
	ExpMonth       string `json:"expMonth"`
	ExpYear        string `json:"expYear"`
	CardholderName string `json:"cardholderName"`
	Brand          string `json:"brand"`
	Type           string `json:"type"`
}

// disputeDTO is the gateway's dispute object. The charge is embedded.
type disputeDTO struct {
	ID              string                  `json:"id"`
	Created         int64                   `json:"created"`
	Updated         int64                   `json:"updated"`
	Amount          int64                   `json:"amount"`
	Currency        string                  `json:"currency"`
	Status          string                  `json:"status"`
	Reason          string                  `json:"reason"`
	AcceptedAsLost  bool                    `json:"acceptedAsLost"`
	Evidence        *domain.DisputeEvidence `json:"evidence"`
	EvidenceDetails *evidenceDetailsDTO     `json:"evidenceDetails"`
	Charge          *chargeDTO              `json:"charge"`
}

type evidenceDetailsDTO struct {
	DueBy           int64 `json:"dueBy"`
	HasEvidence     bool  `json:"hasEvidence"`
	PastDue         bool  `json:"pastDue"`
	SubmissionCount int   `json:"submissionCount"`
}

// translateCharge converts a charge DTO. An object without an ID is not a
// charge.
func translateCharge(ext *chargeDTO) (*domain.Charge, error) {
	if ext == nil || ext.ID == "" {
		return nil, fmt.Errorf("charge object has no id")
	}

	charge := &domain.Charge{
		ID:             ext.ID,
		Created:        unixTime(ext.Created),
		Amount:         ext.Amount,
		AmountRefunded: ext.AmountRefunded,
		Currency:       ext.Currency,
		Description:    ext.Description,
		Status:         domain.ChargeStatus(ext.Status),
		CustomerID:     ext.Customer,
		Captured:       ext.Captured,
		Refunded:       ext.Refunded,
		Disputed:       ext.Disputed,
		Metadata:       ext.Metadata,
		FailureCode:    ext.FailureCode,
		FailureMessage: ext.FailureMessage,
	}

	if ext.Card != nil {
		charge.Card = &domain.Card{
			ID:             ext.Card.ID,
			First6:         ext.Card.First6,
			Last4:          ext.Card.Last4,
			Fingerprint:    ext.Card.Fingerprint,
			ExpMonth:       ext.Card.ExpMonth,
			ExpYear:        ext.Card.ExpYear,
			CardholderName: ext.Card.CardholderName,
			Brand:          ext.Card.Brand,
			Type:           ext.Card.Type,
		}
	}

	return charge, nil
}

func translateDispute(ext *disputeDTO) (*domain.Dispute, error) {
	if ext == nil || ext.ID == "" {
		return nil, fmt.Errorf("dispute object has no id")
	}

	dispute := &domain.Dispute{
		ID:             ext.ID,
		Created:        unixTime(ext.Created),
		Updated:        unixTime(ext.Updated),
		Amount:         ext.Amount,
		Currency:       ext.Currency,
		Status:         domain.DisputeStatus(ext.Status),
		Reason:         domain.DisputeReason(ext.Reason),
		AcceptedAsLost: ext.AcceptedAsLost,
		Evidence:       ext.Evidence,
	}

	if ext.EvidenceDetails != nil {
		dispute.EvidenceDetails = &domain.EvidenceDetails{
			DueBy:           unixTime(ext.EvidenceDetails.DueBy),
			HasEvidence:     ext.EvidenceDetails.HasEvidence,
			PastDue:         ext.EvidenceDetails.PastDue,
			SubmissionCount: ext.EvidenceDetails.SubmissionCount,
		}
	}

	if ext.Charge != nil {
		charge, err := translateCharge(ext.Charge)
		if err != nil {
			return nil, fmt.Errorf("dispute %s: %w", ext.ID, err)
		}

		dispute.Charge = charge
	}

	return dispute, nil
}

// unixTime converts unix seconds to UTC; zero stays the zero time.
func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}

	return time.Unix(sec, 0).UTC()
}
