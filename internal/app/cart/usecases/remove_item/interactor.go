package remove_item

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request removes quantity of a product from a cart.
type Request struct {
	CartID    string
	ProductID string
	Quantity  int64
}

// Interactor handles the remove item use case.
type Interactor struct {
	carts     contracts.CartRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(carts contracts.CartRepository, cmt *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		carts:     carts,
		committer: cmt,
		clock:     clk,
	}
}

// Execute decrements the cart's line for the product, deleting the
// line when it reaches zero. A closed cart rejects the change, and
// removing more than the line holds is rejected and leaves the cart
// unchanged.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var cart *domain.Cart

	err := i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		var err error
		cart, err = i.carts.GetByID(ctx, txn, req.CartID)
		if err != nil {
			return err
		}

		now := i.clock.Now()
		if err := cart.RemoveItem(req.ProductID, req.Quantity, now); err != nil {
			return err
		}

		plan := committer.NewPlan()
		if item := cart.Item(req.ProductID); item != nil {
			plan.Add(i.carts.UpdateItemQuantityMut(cart.ID(), req.ProductID, item.Quantity(), now))
		} else {
			plan.Add(i.carts.DeleteItemMut(cart.ID(), req.ProductID))
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}
