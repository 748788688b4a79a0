package get_open_cart

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
)

// Request contains the user whose open cart to retrieve.
type Request struct {
	UserID string
}

// Query handles the get open cart query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get open cart query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the user's single open cart.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.CartDTO, error) {
	return q.readModel.GetOpenCartByUser(ctx, req.UserID)
}
