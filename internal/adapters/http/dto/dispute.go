package dto

import "github.com/jsamuelsen/gateway-client/internal/domain"

// DisputeResponse is a dispute as the gateway serializes it, with the
// disputed charge embedded.
type DisputeResponse struct {
	ID              string                   `json:"id"`
	Created         int64                    `json:"created"`
	Updated         int64                    `json:"updated"`
	Amount          int64                    `json:"amount"`
	Currency        string                   `json:"currency"`
	Status          string                   `json:"status"`
	Reason          string                   `json:"reason,omitempty"`
	AcceptedAsLost  bool                     `json:"acceptedAsLost"`
	Evidence        *domain.DisputeEvidence  `json:"evidence,omitempty"`
	EvidenceDetails *EvidenceDetailsResponse `json:"evidenceDetails,omitempty"`
	Charge          *ChargeResponse          `json:"charge,omitempty"`
}

// EvidenceDetailsResponse describes the evidence window.
type EvidenceDetailsResponse struct {
	DueBy           int64 `json:"dueBy"`
	HasEvidence     bool  `json:"hasEvidence"`
	PastDue         bool  `json:"pastDue"`
	SubmissionCount int   `json:"submissionCount"`
}

// NewDisputeResponse converts a domain dispute.
func NewDisputeResponse(d *domain.Dispute) *DisputeResponse {
	resp := &DisputeResponse{
		ID:             d.ID,
		Created:        unixSeconds(d.Created),
		Updated:        unixSeconds(d.Updated),
		Amount:         d.Amount,
		Currency:       d.Currency,
		Status:         string(d.Status),
		Reason:         string(d.Reason),
		AcceptedAsLost: d.AcceptedAsLost,
		Evidence:       d.Evidence,
	}

	if d.EvidenceDetails != nil {
		resp.EvidenceDetails = &EvidenceDetailsResponse{
			DueBy:           unixSeconds(d.EvidenceDetails.DueBy),
			HasEvidence:     d.EvidenceDetails.HasEvidence,
			PastDue:         d.EvidenceDetails.PastDue,
			SubmissionCount: d.EvidenceDetails.SubmissionCount,
		}
	}

	if d.Charge != nil {
		resp.Charge = NewChargeResponse(d.Charge)
	}

	return resp
}
