package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID string
	Name      string
	Color     string
	Type      string
	Fit       string
	Material  string
	Size      string
	Price     float64 // Approximate representation for display
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter defines filtering options for listing products.
// Empty string fields are not filtered on; nil price bounds are open.
type ListFilter struct {
	Name     string
	Color    string
	Type     string
	Material string
	Fit      string
	Size     string
	MinPrice *money.Money
	MaxPrice *money.Money
}

// ReadModel defines the interface for product queries.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves a filtered page of products ordered by
	// creation time.
	ListProducts(ctx context.Context, filter *ListFilter, page query.Page) ([]*ProductDTO, error)
}
