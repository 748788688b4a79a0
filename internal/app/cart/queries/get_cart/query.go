package get_cart

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
)

// Request contains the cart ID to retrieve.
type Request struct {
	CartID string
}

// Query handles the get cart query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get cart query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a cart by ID with its line items.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CartDTO, error) {
	return q.readModel.GetCartByID(ctx, req.CartID)
}
