package add_item

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request adds quantity of a product to a cart.
type Request struct {
	CartID    string
	ProductID string
	Quantity  int64
}

// Interactor handles the add item use case.
type Interactor struct {
	carts     contracts.CartRepository
	products  contracts.ProductDirectory
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new add item interactor.
func NewInteractor(
	carts contracts.CartRepository,
	products contracts.ProductDirectory,
	cmt *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		carts:     carts,
		products:  products,
		committer: cmt,
		clock:     clk,
	}
}

// Execute merges quantity into the cart's line for the product,
// creating the line if the product isn't in the cart yet. A closed
// cart rejects the change. The whole read-merge-write cycle runs in
// one transaction, so two concurrent adds of the same product cannot
// lose one another's quantity.
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

		exists, err := i.products.Exists(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			return catalogdomain.ErrProductNotFound
		}

		existing := cart.Item(req.ProductID) != nil
		now := i.clock.Now()
		if err := cart.AddItem(req.ProductID, req.Quantity, now); err != nil {
			return err
		}

		item := cart.Item(req.ProductID)
		plan := committer.NewPlan()
		if existing {
			plan.Add(i.carts.UpdateItemQuantityMut(cart.ID(), req.ProductID, item.Quantity(), now))
		} else {
			plan.Add(i.carts.InsertItemMut(item, now))
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}
