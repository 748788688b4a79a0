package list_carts

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// Request contains optional pagination parameters.
type Request struct {
	Offset *int64
	Limit  *int64
}

// Query handles the list carts query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list carts query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of carts with their line items.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.CartDTO, error) {
	page, err := query.NewPage(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}
	return q.readModel.ListCarts(ctx, page)
}
