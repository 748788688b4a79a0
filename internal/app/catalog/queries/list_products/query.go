package list_products

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// Request contains filtering and pagination parameters. Empty strings
// and nil bounds mean "don't filter".
type Request struct {
	Name     string
	Color    string
	Type     string
	Material string
	Fit      string
	Size     string
	MinPrice *money.Money
	MaxPrice *money.Money
	Offset   *int64
	Limit    *int64
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a filtered page of products.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	page, err := query.NewPage(req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := &contracts.ListFilter{
		Name:     req.Name,
		Color:    req.Color,
		Type:     req.Type,
		Material: req.Material,
		Fit:      req.Fit,
		Size:     req.Size,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}

	return q.readModel.ListProducts(ctx, filter, page)
}
