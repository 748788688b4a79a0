package contracts

import (
	"context"

	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// Pricer is the slice of the catalog the checkout transaction needs:
// the current unit price of a product, read through the transaction's
// own snapshot so every line prices against the same catalog state.
type Pricer interface {
	UnitPrice(ctx context.Context, r committer.Reader, productID string) (*money.Money, error)
}
