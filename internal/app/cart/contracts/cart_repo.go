package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// CartRepository defines the interface for cart and line item
// persistence. Repositories return mutations, they don't apply them.
//
// Line items live interleaved in their parent cart, so DeleteMut
// removes the items along with the cart row.
type CartRepository interface {
	// InsertMut creates a mutation for inserting an empty cart row.
	InsertMut(cart *domain.Cart) *spanner.Mutation

	// CloseMut creates a mutation flipping the cart to closed.
	CloseMut(cartID string, now time.Time) *spanner.Mutation

	// DeleteMut creates a mutation deleting the cart row and, by
	// interleaving, its line items.
	DeleteMut(cartID string) *spanner.Mutation

	// InsertItemMut creates a mutation for a brand-new line item.
	InsertItemMut(item *domain.CartItem, now time.Time) *spanner.Mutation

	// UpdateItemQuantityMut creates a mutation rewriting an existing
	// line's quantity.
	UpdateItemQuantityMut(cartID, productID string, quantity int64, now time.Time) *spanner.Mutation

	// DeleteItemMut creates a mutation deleting one line item.
	DeleteItemMut(cartID, productID string) *spanner.Mutation

	// GetByID retrieves a cart with its line items in insertion order.
	GetByID(ctx context.Context, r committer.Reader, cartID string) (*domain.Cart, error)

	// OpenCartIDs returns the IDs of the user's open carts. The engine
	// keeps this at exactly one per user; callers treat zero and
	// many as anomalies.
	OpenCartIDs(ctx context.Context, r committer.Reader, userID string) ([]string, error)

	// CartIDsByUser returns the IDs of all carts ever owned by the
	// user, open and closed.
	CartIDsByUser(ctx context.Context, r committer.Reader, userID string) ([]string, error)
}
