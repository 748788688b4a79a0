package list_purchases

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// Request contains optional pagination parameters. When UserID is set,
// results are limited to purchases against that user's carts.
type Request struct {
	UserID string
	Offset *int64
	Limit  *int64
}

// Query handles the list purchases query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list purchases query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of purchases, most recent first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.PurchaseDTO, error) {
	page, err := query.NewPage(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	if req.UserID != "" {
		return q.readModel.ListPurchasesByUser(ctx, req.UserID, page)
	}
	return q.readModel.ListPurchases(ctx, page)
}
