package gateway

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// Query parameter names understood by the gateway's list endpoints.
const (
	queryLimit             = "limit"
	queryStartingAfterID   = "startingAfterId"
	queryEndingBeforeID    = "endingBeforeId"
	queryIncludeTotalCount = "includeTotalCount"
	queryCreatedGte        = "created[gte]"
	queryCreatedLte        = "created[lte]"
)

// listResponse is the gateway's page envelope.
type listResponse[D any] struct {
	List       []D  `json:"list"`
	HasMore    bool `json:"hasMore"`
	TotalCount *int `json:"totalCount"`
}

// ListQuery validates params and encodes them as gateway query parameters.
// Zero values are omitted so the gateway applies its own defaults.
func ListQuery(p domain.ListParams) (url.Values, error) {
	if p.Limit < 0 || p.Limit > domain.MaxListLimit {
		return nil, domain.NewValidationErrorWithValue("limit",
			fmt.Sprintf("must be between 0 and %d", domain.MaxListLimit), p.Limit)
	}

	if p.StartingAfterID != "" && p.EndingBeforeID != "" {
		return nil, domain.NewValidationError("startingAfterId", "cannot be combined with endingBeforeId")
	}

	if p.CreatedGte != nil && p.CreatedLte != nil && p.CreatedGte.After(*p.CreatedLte) {
		return nil, domain.NewValidationError("created", "lower bound is after upper bound")
	}

	q := url.Values{}

	if p.Limit > 0 {
		q.Set(queryLimit, strconv.Itoa(p.Limit))
	}

	if p.StartingAfterID != "" {
		q.Set(queryStartingAfterID, p.StartingAfterID)
	}

	if p.EndingBeforeID != "" {
		q.Set(queryEndingBeforeID, p.EndingBeforeID)
	}

	if p.IncludeTotalCount {
		q.Set(queryIncludeTotalCount, "true")
	}

	if p.CreatedGte != nil {
		q.Set(queryCreatedGte, strconv.FormatInt(p.CreatedGte.Unix(), 10))
	}

	if p.CreatedLte != nil {
		q.Set(queryCreatedLte, strconv.FormatInt(p.CreatedLte.Unix(), 10))
	}

	return q, nil
}

// translatePage converts a page envelope. A page holding more items than were
// asked for is rejected rather than truncated.
func translatePage[D any, T any](
	resp *listResponse[D],
	limit int,
	translate Translator[D, T],
	idOf func(*T) string,
) (*domain.ListResult[*T], error) {
	maxItems := limit
	if maxItems == 0 {
		maxItems = domain.MaxListLimit
	}

	if len(resp.List) > maxItems {
		return nil, fmt.Errorf("page holds %d items, more than the limit of %d", len(resp.List), maxItems)
	}

	items, err := TranslateSlice(resp.List, translate)
	if err != nil {
		return nil, err
	}

	result := &domain.ListResult[*T]{
		List:       items,
		HasMore:    resp.HasMore,
		TotalCount: resp.TotalCount,
	}

	if resp.HasMore && len(items) > 0 {
		result.NextCursor = idOf(items[len(items)-1])
	}

	return result, nil
}
