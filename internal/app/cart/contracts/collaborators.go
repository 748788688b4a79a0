package contracts

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// UserDirectory is the slice of the account aggregate the cart engine
// needs: ownership checks only.
type UserDirectory interface {
	Exists(ctx context.Context, r committer.Reader, userID string) (bool, error)
}

// ProductDirectory is the slice of the catalog the cart engine needs:
// a line item may only reference a product that exists.
type ProductDirectory interface {
	Exists(ctx context.Context, r committer.Reader, productID string) (bool, error)
}

// PurchaseLedger is the slice of the purchase aggregate the cart
// engine needs: a cart referenced by a purchase must not be deleted.
type PurchaseLedger interface {
	ExistsForCart(ctx context.Context, r committer.Reader, cartID string) (bool, error)
}
