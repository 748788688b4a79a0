package get_purchase

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
)

// Request contains the purchase ID to retrieve.
type Request struct {
	PurchaseID string
}

// Query handles the get purchase query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get purchase query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a purchase by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.PurchaseDTO, error) {
	return q.readModel.GetPurchaseByID(ctx, req.PurchaseID)
}
