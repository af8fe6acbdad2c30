package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// Test card numbers recognized by the sandbox. Any other well-formed number
// produces a successful charge.
const (
	CardSuccess  = "4242424242424242"
	CardDeclined = "4000000000000002"
	CardDisputed = "4242000000000018"
)

// DefaultListLimit is the page size used when a list request has no limit.
const DefaultListLimit = 10

// evidenceWindow is how long a merchant has to respond to a new dispute.
const evidenceWindow = 7 * 24 * time.Hour

// Messages returned by the store.
const (
	messageCardDeclined     = "The card was declined."
	messageChargeNotFound   = "Charge not found."
	messageDisputeNotFound  = "Dispute not found."
	messageDisputeClosed    = "Dispute is already closed."
	messageNotCapturable    = "Charge cannot be captured."
	messageCustomerNotFound = "Customer not found."
)

// StoreConfig configures a Store.
type StoreConfig struct {
	// DisputeDelay is how long after a charge on CardDisputed its dispute
	// appears. Zero opens it on the next read.
	DisputeDelay time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

type pendingDispute struct {
	chargeID string
	openAt   time.Time
}

// Store holds the sandbox's charges and disputes in memory. Every value it
// returns is a copy; callers may modify results freely.
type Store struct {
	mu  sync.Mutex
	cfg StoreConfig

	charges      map[string]*domain.Charge
	chargeOrder  []string
	disputes     map[string]*domain.Dispute
	disputeOrder []string
	pending      []pendingDispute
}

// NewStore creates an empty store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Store{
		cfg:      cfg,
		charges:  make(map[string]*domain.Charge),
		disputes: make(map[string]*domain.Dispute),
	}
}

// CreateCharge records a charge. A charge on CardDeclined is stored as failed
// and reported as a card_error carrying its ID.
func (s *Store) CreateCharge(req *domain.ChargeRequest) (*domain.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	charge := &domain.Charge{
		ID:          newID("char"),
		Created:     now,
		Amount:      req.Amount,
		Currency:    strings.ToUpper(req.Currency),
		Description: req.Description,
		CustomerID:  req.CustomerID,
		Status:      domain.ChargeStatusSuccessful,
		Captured:    true,
		Metadata:    maps.Clone(req.Metadata),
	}

	if req.Captured != nil {
		charge.Captured = *req.Captured
	}

	switch {
	case req.Card != nil:
		charge.Card = newCard(req.Card)
	case req.CustomerID != "":
		return nil, domain.NewGatewayError(domain.KindInvalidRequest, messageCustomerNotFound)
	}

	var declined bool
	if req.Card != nil {
		switch req.Card.Number {
		case CardDeclined:
			declined = true
			charge.Status = domain.ChargeStatusFailed
			charge.Captured = false
			charge.FailureCode = "card_declined"
			charge.FailureMessage = messageCardDeclined
		case CardDisputed:
			s.pending = append(s.pending, pendingDispute{
				chargeID: charge.ID,
				openAt:   now.Add(s.cfg.DisputeDelay),
			})
		}
	}

	s.charges[charge.ID] = charge
	s.chargeOrder = append(s.chargeOrder, charge.ID)

	if declined {
		gwErr := domain.NewGatewayError(domain.KindCardError, messageCardDeclined)
		gwErr.Code = charge.FailureCode
		gwErr.ChargeID = charge.ID

		return nil, gwErr
	}

	return cloneCharge(charge), nil
}

// GetCharge returns the charge with the given ID.
func (s *Store) GetCharge(id string) (*domain.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openDueDisputes()

	charge, ok := s.charges[id]
	if !ok {
		return nil, domain.NewGatewayError(domain.KindNotFound, messageChargeNotFound)
	}

	return cloneCharge(charge), nil
}

// UpdateCharge sets the non-empty fields of req. Metadata keys are merged.
func (s *Store) UpdateCharge(id string, req *domain.ChargeUpdateRequest) (*domain.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	charge, ok := s.charges[id]
	if !ok {
		return nil, domain.NewGatewayError(domain.KindNotFound, messageChargeNotFound)
	}

	if req.Description != "" {
		charge.Description = req.Description
	}

	if req.CustomerID != "" {
		charge.CustomerID = req.CustomerID
	}

	if len(req.Metadata) > 0 && charge.Metadata == nil {
		charge.Metadata = make(map[string]string, len(req.Metadata))
	}

	maps.Copy(charge.Metadata, req.Metadata)

	return cloneCharge(charge), nil
}

// CaptureCharge captures an authorized charge. Capturing twice is a no-op.
func (s *Store) CaptureCharge(id string) (*domain.Charge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	charge, ok := s.charges[id]
	if !ok {
		return nil, domain.NewGatewayError(domain.KindNotFound, messageChargeNotFound)
	}

	if charge.Status == domain.ChargeStatusFailed {
		return nil, domain.NewGatewayError(domain.KindInvalidRequest, messageNotCapturable)
	}

	charge.Captured = true

	return cloneCharge(charge), nil
}

// ListCharges returns charges newest first.
func (s *Store) ListCharges(params domain.ListParams) (*domain.ListResult[*domain.Charge], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openDueDisputes()

	items := make([]*domain.Charge, 0, len(s.chargeOrder))
	for i := len(s.chargeOrder) - 1; i >= 0; i-- {
		items = append(items, s.charges[s.chargeOrder[i]])
	}

	result, err := paginate(items, params,
		func(c *domain.Charge) string { return c.ID },
		func(c *domain.Charge) time.Time { return c.Created },
	)
	if err != nil {
		return nil, err
	}

	for i, c := range result.List {
		result.List[i] = cloneCharge(c)
	}

	return result, nil
}

// GetDispute returns the dispute with the given ID.
func (s *Store) GetDispute(id string) (*domain.Dispute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openDueDisputes()

	dispute, ok := s.disputes[id]
	if !ok {
		return nil, domain.NewGatewayError(domain.KindNotFound, messageDisputeNotFound)
	}

	return s.snapshot(dispute), nil
}

// UpdateDispute merges the submitted evidence into the dispute and moves it
// under review.
func (s *Store) UpdateDispute(id string, req *domain.DisputeUpdateRequest) (*domain.Dispute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openDueDisputes()

	dispute, ok := s.disputes[id]
	if !ok {
		return nil, domain.NewGatewayError(domain.KindNotFound, messageDisputeNotFound)
	}

	if dispute.Status.Closed() {
		return nil, domain.NewGatewayError(domain.KindInvalidRequest, messageDisputeClosed)
	}

	merged, err := mergeEvidence(dispute.Evidence, req.Evidence)
	if err != nil {
		return nil, err
	}

	dispute.Evidence = merged
	dispute.EvidenceDetails.HasEvidence = true
	dispute.EvidenceDetails.SubmissionCount++
	dispute.Updated = s.now()

	if dispute.Status == domain.DisputeStatusChargebackNew {
		dispute.Status = domain.DisputeStatusChargebackUnderReview
	}

	return s.snapshot(dispute), nil
}

// CloseDispute accepts the dispute as lost. Closing a closed dispute returns
// it unchanged. The sandbox only opens chargebacks, so every close ends in
// CHARGEBACK_CLOSED_LOST.
func (s *Store) CloseDispute(id string) (*domain.Dispute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openDueDisputes()

	dispute, ok := s.disputes[id]
	if !ok {
		return nil, domain.NewGatewayError(domain.KindNotFound, messageDisputeNotFound)
	}

	if dispute.Status.Closed() {
		return s.snapshot(dispute), nil
	}

	dispute.Status = domain.DisputeStatusChargebackClosedLost
	dispute.AcceptedAsLost = true
	dispute.Updated = s.now()

	return s.snapshot(dispute), nil
}

// ListDisputes returns disputes newest first.
func (s *Store) ListDisputes(params domain.ListParams) (*domain.ListResult[*domain.Dispute], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.openDueDisputes()

	items := make([]*domain.Dispute, 0, len(s.disputeOrder))
	for i := len(s.disputeOrder) - 1; i >= 0; i-- {
		items = append(items, s.disputes[s.disputeOrder[i]])
	}

	result, err := paginate(items, params,
		func(d *domain.Dispute) string { return d.ID },
		func(d *domain.Dispute) time.Time { return d.Created },
	)
	if err != nil {
		return nil, err
	}

	for i, d := range result.List {
		result.List[i] = s.snapshot(d)
	}

	return result, nil
}

// openDueDisputes turns pending disputes whose time has come into real ones.
// Callers hold s.mu.
func (s *Store) openDueDisputes() {
	if len(s.pending) == 0 {
		return
	}

	now := s.now()
	remaining := s.pending[:0]

	for _, p := range s.pending {
		if p.openAt.After(now) {
			remaining = append(remaining, p)
			continue
		}

		charge := s.charges[p.chargeID]
		charge.Disputed = true

		dispute := &domain.Dispute{
			ID:       newID("dp"),
			Created:  p.openAt,
			Updated:  p.openAt,
			Amount:   charge.Amount,
			Currency: charge.Currency,
			Status:   domain.DisputeStatusChargebackNew,
			Reason:   domain.DisputeReasonFraudulent,
			EvidenceDetails: &domain.EvidenceDetails{
				DueBy: p.openAt.Add(evidenceWindow),
			},
			Charge: charge,
		}

		s.disputes[dispute.ID] = dispute
		s.disputeOrder = append(s.disputeOrder, dispute.ID)
	}

	s.pending = remaining
}

// snapshot copies a dispute with its current charge and past-due flag.
// Callers hold s.mu.
func (s *Store) snapshot(d *domain.Dispute) *domain.Dispute {
	out := *d
	out.Charge = cloneCharge(d.Charge)

	if d.Evidence != nil {
		ev := *d.Evidence
		out.Evidence = &ev
	}

	if d.EvidenceDetails != nil {
		details := *d.EvidenceDetails
		details.PastDue = !d.Status.Closed() && s.now().After(details.DueBy)
		out.EvidenceDetails = &details
	}

	return &out
}

func (s *Store) now() time.Time {
	return s.cfg.Now().UTC()
}

// paginate slices a newest-first list the way the gateway does. A cursor that
// names no item is an invalid request.
func paginate[T any](items []T, params domain.ListParams, idOf func(T) string, createdOf func(T) time.Time) (*domain.ListResult[T], error) {
	filtered := items[:0:0]
	for _, item := range items {
		created := createdOf(item)
		if params.CreatedGte != nil && created.Before(*params.CreatedGte) {
			continue
		}

		if params.CreatedLte != nil && created.After(*params.CreatedLte) {
			continue
		}

		filtered = append(filtered, item)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var (
		window  []T
		hasMore bool
	)

	switch {
	case params.StartingAfterID != "":
		i, err := indexOf(filtered, params.StartingAfterID, idOf)
		if err != nil {
			return nil, err
		}

		window = filtered[i+1:]
		hasMore = len(window) > limit

		if hasMore {
			window = window[:limit]
		}
	case params.EndingBeforeID != "":
		i, err := indexOf(filtered, params.EndingBeforeID, idOf)
		if err != nil {
			return nil, err
		}

		window = filtered[:i]
		hasMore = len(window) > limit

		if hasMore {
			window = window[len(window)-limit:]
		}
	default:
		window = filtered
		hasMore = len(window) > limit

		if hasMore {
			window = window[:limit]
		}
	}

	result := &domain.ListResult[T]{
		List:    append([]T(nil), window...),
		HasMore: hasMore,
	}

	if hasMore && len(window) > 0 {
		result.NextCursor = idOf(window[len(window)-1])
	}

	if params.IncludeTotalCount {
		total := len(filtered)
		result.TotalCount = &total
	}

	return result, nil
}

func indexOf[T any](items []T, id string, idOf func(T) string) (int, error) {
	for i, item := range items {
		if idOf(item) == id {
			return i, nil
		}
	}

	return 0, domain.NewGatewayError(domain.KindInvalidRequest, "Cannot find object with id: "+id)
}

// mergeEvidence overlays the non-empty fields of update onto current.
func mergeEvidence(current, update *domain.DisputeEvidence) (*domain.DisputeEvidence, error) {
	merged := &domain.DisputeEvidence{}
	if current != nil {
		*merged = *current
	}

	if update == nil {
		return merged, nil
	}

	raw, err := json.Marshal(update)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func newCard(req *domain.CardRequest) *domain.Card {
	number := req.Number
	sum := sha256.Sum256([]byte(number))

	return &domain.Card{
		ID:             newID("card"),
		First6:         number[:6],
		Last4:          number[len(number)-4:],
		Fingerprint:    hex.EncodeToString(sum[:8]),
		ExpMonth:       req.ExpMonth,
		ExpYear:        req.ExpYear,
		CardholderName: req.CardholderName,
		Brand:          cardBrand(number),
		Type:           "Credit Card",
	}
}

func cardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "Visa"
	case strings.HasPrefix(number, "5"):
		return "Mastercard"
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return "American Express"
	default:
		return "Unknown"
	}
}

func cloneCharge(c *domain.Charge) *domain.Charge {
	if c == nil {
		return nil
	}

	out := *c
	out.Metadata = maps.Clone(c.Metadata)

	if c.Card != nil {
		card := *c.Card
		out.Card = &card
	}

	return &out
}

// newID returns a gateway-style identifier such as "char_3f9c...".
func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}
