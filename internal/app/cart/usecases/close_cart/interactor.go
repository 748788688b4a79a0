package close_cart

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the cart to close.
type Request struct {
	CartID string
}

// Interactor handles the close cart use case.
type Interactor struct {
	carts     contracts.CartRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new close cart interactor.
func NewInteractor(carts contracts.CartRepository, cmt *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		carts:     carts,
		committer: cmt,
		clock:     clk,
	}
}

// Execute closes the cart. Closing a cart that is already closed is a
// successful no-op, so retries are harmless.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		cart, err := i.carts.GetByID(ctx, txn, req.CartID)
		if err != nil {
			return err
		}

		if !cart.Close(i.clock.Now()) {
			return nil
		}

		plan := committer.NewPlan()
		plan.Add(i.carts.CloseMut(cart.ID(), cart.UpdatedAt()))
		return txn.BufferWrite(plan.Mutations())
	})
}
