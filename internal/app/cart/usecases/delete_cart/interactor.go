package delete_cart

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the cart to delete.
type Request struct {
	CartID string
}

// Interactor handles the delete cart use case.
type Interactor struct {
	carts     contracts.CartRepository
	purchases contracts.PurchaseLedger
	committer *committer.Committer
}

// NewInteractor creates a new delete cart interactor.
func NewInteractor(carts contracts.CartRepository, purchases contracts.PurchaseLedger, cmt *committer.Committer) *Interactor {
	return &Interactor{
		carts:     carts,
		purchases: purchases,
		committer: cmt,
	}
}

// Execute deletes the cart and its line items. A cart referenced by a
// purchase is part of the order history and cannot be deleted.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		cart, err := i.carts.GetByID(ctx, txn, req.CartID)
		if err != nil {
			return err
		}

		purchased, err := i.purchases.ExistsForCart(ctx, txn, cart.ID())
		if err != nil {
			return err
		}
		if purchased {
			return fmt.Errorf("cart %s is referenced by a purchase: %w", cart.ID(), domain.ErrCartConflict)
		}

		plan := committer.NewPlan()
		plan.Add(i.carts.DeleteMut(cart.ID()))
		return txn.BufferWrite(plan.Mutations())
	})
}
