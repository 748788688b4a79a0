package delete_purchase

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the purchase ID to delete.
type Request struct {
	PurchaseID string
}

// Interactor handles the delete purchase use case.
type Interactor struct {
	purchases contracts.PurchaseRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete purchase interactor.
func NewInteractor(purchases contracts.PurchaseRepository, cmt *committer.Committer) *Interactor {
	return &Interactor{
		purchases: purchases,
		committer: cmt,
	}
}

// Execute deletes the purchase record. The source cart stays closed;
// deleting a purchase un-finalizes nothing.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		purchase, err := i.purchases.GetByID(ctx, txn, req.PurchaseID)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.purchases.DeleteMut(purchase.ID()))
		return txn.BufferWrite(plan.Mutations())
	})
}
