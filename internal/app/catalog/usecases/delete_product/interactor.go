package delete_product

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
)

// Request contains the product ID to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository, cmt *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: cmt,
	}
}

// Execute deletes the product. Cart lines that reference it are left
// in place; checkout surfaces the missing product when it prices the
// cart, and the line can still be removed normally.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		exists, err := i.repo.Exists(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrProductNotFound
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(req.ProductID))
		return txn.BufferWrite(plan.Mutations())
	})
}
