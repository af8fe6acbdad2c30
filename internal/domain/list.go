package domain

import "time"

// MaxListLimit is the largest page size the gateway accepts.
const MaxListLimit = 100

// ListParams filters a list request.
// A zero Limit lets the gateway choose its default page size. StartingAfterID
// and EndingBeforeID are mutually exclusive.
type ListParams struct {
	Limit             int
	StartingAfterID   string
	EndingBeforeID    string
	IncludeTotalCount bool
	CreatedGte        *time.Time
	CreatedLte        *time.Time
}

// After returns a copy of p that continues after the given cursor.
func (p ListParams) After(cursor string) ListParams {
	p.StartingAfterID = cursor
	p.EndingBeforeID = ""

	return p
}

// ListResult is one page of entities, in the order the gateway returned them.
// It is a snapshot: later gateway changes are not reflected.
type ListResult[T any] struct {
	// List holds the page items in gateway order.
	List []T `json:"list"`

	// HasMore reports whether the gateway holds items after this page.
	HasMore bool `json:"hasMore"`

	// TotalCount is set when the request asked for it.
	TotalCount *int `json:"totalCount,omitempty"`

	// NextCursor is the ID to continue after, empty when HasMore is false.
	NextCursor string `json:"nextCursor,omitempty"`
}

// NextParams returns the params for the page after this one, built from
// current. ok is false when the gateway reported no further items.
func (r *ListResult[T]) NextParams(current ListParams) (next ListParams, ok bool) {
	if r == nil || !r.HasMore || r.NextCursor == "" {
		return current, false
	}

	return current.After(r.NextCursor), true
}

// Len returns the number of items in the page.
func (r *ListResult[T]) Len() int {
	if r == nil {
		return 0
	}

	return len(r.List)
}

// Find returns the first item on this page matching pred.
// It never fetches further pages.
func (r *ListResult[T]) Find(pred func(T) bool) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}

	for _, item := range r.List {
		if pred(item) {
			return item, true
		}
	}

	return zero, false
}
