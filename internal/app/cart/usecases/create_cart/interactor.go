package create_cart

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the owner of the cart to open.
type Request struct {
	UserID string
}

// Interactor handles the create cart use case.
type Interactor struct {
	carts     contracts.CartRepository
	users     contracts.UserDirectory
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create cart interactor.
func NewInteractor(
	carts contracts.CartRepository,
	users contracts.UserDirectory,
	cmt *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		carts:     carts,
		users:     users,
		committer: cmt,
		clock:     clk,
	}
}

// Execute opens a new empty cart for the user. The one-open-cart rule
// is checked inside the same read-write transaction as the insert, so
// two concurrent creates for one user cannot both commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	cart := domain.NewCart(uuid.New().String(), req.UserID, i.clock.Now())

	err := i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		exists, err := i.users.Exists(ctx, txn, req.UserID)
		if err != nil {
			return err
		}
		if !exists {
			return accountdomain.ErrUserNotFound
		}

		open, err := i.carts.OpenCartIDs(ctx, txn, req.UserID)
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return domain.ErrCartConflict
		}

		plan := committer.NewPlan()
		plan.Add(i.carts.InsertMut(cart))
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return "", err
	}

	return cart.ID(), nil
}
