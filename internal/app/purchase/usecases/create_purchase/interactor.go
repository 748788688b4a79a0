package create_purchase

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	cartcontracts "github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/app/purchase/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// Request finalizes one cart into a purchase.
type Request struct {
	CartID        string
	PaymentMethod string
}

// Result reports the finalized purchase and the replacement cart that
// keeps the owner shopping.
type Result struct {
	PurchaseID string
	CartID     string
	Total      *money.Money
}

// Interactor handles the create purchase use case.
type Interactor struct {
	purchases contracts.PurchaseRepository
	carts     cartcontracts.CartRepository
	pricer    contracts.Pricer
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create purchase interactor.
func NewInteractor(
	purchases contracts.PurchaseRepository,
	carts cartcontracts.CartRepository,
	pricer contracts.Pricer,
	cmt *committer.Committer,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		purchases: purchases,
		carts:     carts,
		pricer:    pricer,
		committer: cmt,
		clock:     clk,
	}
}

// Execute finalizes the cart: validates it is open, non-empty and not
// yet purchased, prices every line against the catalog, and commits
// the purchase row, the cart close and the owner's replacement cart as
// one transaction. All checks run against the transaction's own
// snapshot, so a concurrent checkout of the same cart cannot slip
// between the check and the commit.
//
// The total is exact rational arithmetic over unit price times
// quantity, summed in line order; no rounding happens on the way to
// storage.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.PaymentMethod == "" {
		return nil, domain.ErrEmptyPaymentMethod
	}

	var result *Result

	err := i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		cart, err := i.carts.GetByID(ctx, txn, req.CartID)
		if err != nil {
			return err
		}
		if !cart.IsOpen() {
			return domain.ErrCartNotOpen
		}
		if cart.IsEmpty() {
			return domain.ErrEmptyCart
		}

		purchased, err := i.purchases.ExistsForCart(ctx, txn, cart.ID())
		if err != nil {
			return err
		}
		if purchased {
			return domain.ErrPurchaseConflict
		}

		total := money.Zero()
		for _, item := range cart.Items() {
			price, err := i.pricer.UnitPrice(ctx, txn, item.ProductID())
			if err != nil {
				return err
			}
			total = total.Add(price.MultiplyInt(item.Quantity()))
		}

		now := i.clock.Now()
		purchase, err := domain.NewPurchase(uuid.New().String(), cart.ID(), total, req.PaymentMethod, now)
		if err != nil {
			return err
		}

		purchaseMut, err := i.purchases.InsertMut(purchase)
		if err != nil {
			return err
		}

		replacement := cartdomain.NewCart(uuid.New().String(), cart.UserID(), now)

		plan := committer.NewPlan()
		plan.Add(purchaseMut)
		plan.Add(i.carts.CloseMut(cart.ID(), now))
		plan.Add(i.carts.InsertMut(replacement))
		if err := txn.BufferWrite(plan.Mutations()); err != nil {
			return err
		}

		result = &Result{
			PurchaseID: purchase.ID(),
			CartID:     replacement.ID(),
			Total:      purchase.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
