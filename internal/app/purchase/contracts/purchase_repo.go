package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/purchase/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// PurchaseRepository defines the interface for purchase persistence.
// Repositories return mutations, they don't apply them. Purchases are
// immutable, so there is no update mutation.
type PurchaseRepository interface {
	// InsertMut creates a mutation for inserting a purchase.
	// Returns error if money values exceed int64 bounds.
	InsertMut(purchase *domain.Purchase) (*spanner.Mutation, error)

	// DeleteMut creates a mutation deleting the purchase row.
	DeleteMut(purchaseID string) *spanner.Mutation

	// GetByID retrieves a purchase by ID, reconstructing the domain
	// aggregate.
	GetByID(ctx context.Context, r committer.Reader, purchaseID string) (*domain.Purchase, error)

	// ExistsForCart checks whether any purchase already finalized the
	// given cart. The checkout transaction re-runs this check against
	// its own snapshot before committing.
	ExistsForCart(ctx context.Context, r committer.Reader, cartID string) (bool, error)

	// IDsForCarts returns the IDs of all purchases referencing any of
	// the given carts. Account erasure uses this to cascade.
	IDsForCarts(ctx context.Context, r committer.Reader, cartIDs []string) ([]string, error)
}
