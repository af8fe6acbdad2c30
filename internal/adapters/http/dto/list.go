package dto

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/gateway-client/internal/domain"
)

// ListRequest is the query accepted by list endpoints.
type ListRequest struct {
	Limit             int    `form:"limit"             validate:"min=0,max=100"`
	StartingAfterID   string `form:"startingAfterId"   validate:"excluded_with=EndingBeforeID"`
	EndingBeforeID    string `form:"endingBeforeId"`
	IncludeTotalCount bool   `form:"includeTotalCount"`
}

// ListResponse is one page of items.
type ListResponse[T any] struct {
	List       []T  `json:"list"`
	HasMore    bool `json:"hasMore"`
	TotalCount *int `json:"totalCount,omitempty"`
}

// BindListParams reads list query parameters, including the created[gte] and
// created[lte] bounds which the form binder cannot name.
func BindListParams(c *gin.Context) (domain.ListParams, error) {
	var req ListRequest
	if err := BindQueryAndValidate(c, &req); err != nil {
		return domain.ListParams{}, err
	}

	params := domain.ListParams{
		Limit:             req.Limit,
		StartingAfterID:   req.StartingAfterID,
		EndingBeforeID:    req.EndingBeforeID,
		IncludeTotalCount: req.IncludeTotalCount,
	}

	var err error
	if params.CreatedGte, err = unixQuery(c, "created[gte]"); err != nil {
		return domain.ListParams{}, err
	}

	if params.CreatedLte, err = unixQuery(c, "created[lte]"); err != nil {
		return domain.ListParams{}, err
	}

	return params, nil
}

func unixQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a unix timestamp")
	}

	t := time.Unix(sec, 0).UTC()

	return &t, nil
}

// NewListResponse converts a page of domain entities.
func NewListResponse[E any, T any](page *domain.ListResult[E], convert func(E) T) *ListResponse[T] {
	items := make([]T, 0, len(page.List))
	for _, e := range page.List {
		items = append(items, convert(e))
	}

	return &ListResponse[T]{
		List:       items,
		HasMore:    page.HasMore,
		TotalCount: page.TotalCount,
	}
}
