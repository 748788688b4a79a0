package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	// Returns error if money values exceed int64 bounds.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation replacing the product's row.
	// Returns error if money values exceed int64 bounds.
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// DeleteMut creates a mutation deleting the product's row.
	DeleteMut(productID string) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, r committer.Reader, productID string) (*domain.Product, error)

	// Exists checks if a product exists.
	Exists(ctx context.Context, r committer.Reader, productID string) (bool, error)

	// UnitPrice reads just the product's current price. The checkout
	// transaction uses this to snapshot prices without loading whole
	// aggregates.
	UnitPrice(ctx context.Context, r committer.Reader, productID string) (*money.Money, error)
}
