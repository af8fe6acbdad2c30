package domain

import "time"

// DisputeStatus is the lifecycle state of a dispute.
type DisputeStatus string

const (
	DisputeStatusRetrievalRequestNew         DisputeStatus = "RETRIEVAL_REQUEST_NEW"
	DisputeStatusRetrievalRequestUnderReview DisputeStatus = "RETRIEVAL_REQUEST_RESPONSE_UNDER_REVIEW"
	DisputeStatusRetrievalRequestClosed      DisputeStatus = "RETRIEVAL_REQUEST_CLOSED"
	DisputeStatusChargebackNew               DisputeStatus = "CHARGEBACK_NEW"
	DisputeStatusChargebackUnderReview       DisputeStatus = "CHARGEBACK_RESPONSE_UNDER_REVIEW"
	DisputeStatusChargebackClosedWon         DisputeStatus = "CHARGEBACK_CLOSED_WON"
	DisputeStatusChargebackClosedLost        DisputeStatus = "CHARGEBACK_CLOSED_LOST"
)

// Closed reports whether the dispute can no longer change.
func (s DisputeStatus) Closed() bool {
	switch s {
	case DisputeStatusRetrievalRequestClosed,
		DisputeStatusChargebackClosedWon,
		DisputeStatusChargebackClosedLost:
		return true
	default:
		return false
	}
}

// DisputeReason is the cardholder's stated reason for the dispute.
type DisputeReason string

const (
	DisputeReasonGeneral                 DisputeReason = "GENERAL"
	DisputeReasonFraudulent              DisputeReason = "FRAUDULENT"
	DisputeReasonDuplicate               DisputeReason = "DUPLICATE"
	DisputeReasonSubscriptionCanceled    DisputeReason = "SUBSCRIPTION_CANCELED"
	DisputeReasonProductNotReceived      DisputeReason = "PRODUCT_NOT_RECEIVED"
	DisputeReasonProductUnacceptable     DisputeReason = "PRODUCT_UNACCEPTABLE"
	DisputeReasonUnrecognized            DisputeReason = "UNRECOGNIZED"
	DisputeReasonCreditNotProcessed      DisputeReason = "CREDIT_NOT_PROCESSED"
	DisputeReasonIncorrectAccountDetails DisputeReason = "INCORRECT_ACCOUNT_DETAILS"
	DisputeReasonInsufficientFunds       DisputeReason = "INSUFFICIENT_FUNDS"
	DisputeReasonBankCannotProcess       DisputeReason = "BANK_CANNOT_PROCESS"
	DisputeReasonDebitNotAuthorized      DisputeReason = "DEBIT_NOT_AUTHORIZED"
)

// Dispute is a cardholder's challenge of a charge.
type Dispute struct {
	ID              string           `json:"id"`
	Created         time.Time        `json:"created"`
	Updated         time.Time        `json:"updated"`
	Amount          int64            `json:"amount"`
	Currency        string           `json:"currency"`
	Status          DisputeStatus    `json:"status"`
	Reason          DisputeReason    `json:"reason,omitempty"`
	AcceptedAsLost  bool             `json:"acceptedAsLost"`
	Evidence        *DisputeEvidence `json:"evidence,omitempty"`
	EvidenceDetails *EvidenceDetails `json:"evidenceDetails,omitempty"`

	// Charge is the disputed charge. At minimum its ID is populated.
	Charge *Charge `json:"charge,omitempty"`
}

// ChargeID returns the ID of the disputed charge, or "" if unknown.
func (d *Dispute) ChargeID() string {
	if d == nil || d.Charge == nil {
		return ""
	}

	return d.Charge.ID
}

// EvidenceDetails describes the evidence submission window.
type EvidenceDetails struct {
	DueBy           time.Time `json:"dueBy"`
	HasEvidence     bool      `json:"hasEvidence"`
	PastDue         bool      `json:"pastDue"`
	SubmissionCount int       `json:"submissionCount"`
}

// DisputeEvidence is the merchant's response to a dispute.
// Wire names match the gateway's nested `evidence.*` fields.
type DisputeEvidence struct {
	ProductDescription             string `json:"productDescription,omitempty"`
	CustomerName                   string `json:"customerName,omitempty"`
	CustomerEmail                  string `json:"customerEmail,omitempty"`
	CustomerPurchaseIP             string `json:"customerPurchaseIp,omitempty"`
	CustomerSignature              string `json:"customerSignature,omitempty"`
	BillingAddress                 string `json:"billingAddress,omitempty"`
	Receipt                        string `json:"receipt,omitempty"`
	CustomerCommunication          string `json:"customerCommunication,omitempty"`
	ServiceDate                    string `json:"serviceDate,omitempty"`
	ServiceDocumentation           string `json:"serviceDocumentation,omitempty"`
	DuplicateChargeID              string `json:"duplicateChargeId,omitempty"`
	DuplicateChargeDocumentation   string `json:"duplicateChargeDocumentation,omitempty"`
	DuplicateChargeExplanation     string `json:"duplicateChargeExplanation,omitempty"`
	RefundPolicy                   string `json:"refundPolicy,omitempty"`
	RefundPolicyDisclosure         string `json:"refundPolicyDisclosure,omitempty"`
	RefundRefusalExplanation       string `json:"refundRefusalExplanation,omitempty"`
	CancellationPolicy             string `json:"cancellationPolicy,omitempty"`
	CancellationPolicyDisclosure   string `json:"cancellationPolicyDisclosure,omitempty"`
	CancellationRefusalExplanation string `json:"cancellationRefusalExplanation,omitempty"`
	AccessActivityLogs             string `json:"accessActivityLogs,omitempty"`
	ShippingAddress                string `json:"shippingAddress,omitempty"`
	ShippingDate                   string `json:"shippingDate,omitempty"`
	ShippingCarrier                string `json:"shippingCarrier,omitempty"`
	ShippingTrackingNumber         string `json:"shippingTrackingNumber,omitempty"`
	ShippingDocumentation          string `json:"shippingDocumentation,omitempty"`
	UncategorizedText              string `json:"uncategorizedText,omitempty"`
	UncategorizedFile              string `json:"uncategorizedFile,omitempty"`
}

// DisputeUpdateRequest is the body of a dispute update request.
type DisputeUpdateRequest struct {
	Evidence *DisputeEvidence `json:"evidence,omitempty" validate:"required"`
}
