package delete_user

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	cartcontracts "github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	purchasecontracts "github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the user ID to delete.
type Request struct {
	UserID string
}

// Interactor handles the delete user use case.
type Interactor struct {
	users     contracts.UserRepository
	carts     cartcontracts.CartRepository
	purchases purchasecontracts.PurchaseRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete user interactor.
func NewInteractor(
	users contracts.UserRepository,
	carts cartcontracts.CartRepository,
	purchases purchasecontracts.PurchaseRepository,
	cmt *committer.Committer,
) *Interactor {
	return &Interactor{
		users:     users,
		carts:     carts,
		purchases: purchases,
		committer: cmt,
	}
}

// Execute erases the account: the user row, every cart the user ever
// owned (line items cascade through interleaving) and the purchase
// records of those carts, in one commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		user, err := i.users.GetByID(ctx, txn, req.UserID)
		if err != nil {
			return err
		}

		cartIDs, err := i.carts.CartIDsByUser(ctx, txn, user.ID())
		if err != nil {
			return err
		}

		purchaseIDs, err := i.purchases.IDsForCarts(ctx, txn, cartIDs)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		for _, purchaseID := range purchaseIDs {
			plan.Add(i.purchases.DeleteMut(purchaseID))
		}
		for _, cartID := range cartIDs {
			plan.Add(i.carts.DeleteMut(cartID))
		}
		plan.Add(i.users.DeleteMut(user.ID()))
		return txn.BufferWrite(plan.Mutations())
	})
}
