package update_product

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// Request contains the product ID and the fields to change. Nil fields
// are left untouched.
type Request struct {
	ProductID string
	Name      *string
	Color     *string
	Type      *string
	Fit       *string
	Material  *string
	Size      *string
	Price     *money.Money
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(repo contracts.ProductRepository, cmt *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: cmt,
		clock:     clk,
	}
}

// Execute applies the requested field changes. The read and the write
// share one transaction so concurrent updates cannot interleave their
// read-modify-write cycles.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.committer.ReadWrite(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		product, err := i.repo.GetByID(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}

		now := i.clock.Now()

		if req.Name != nil {
			if err := product.SetName(*req.Name, now); err != nil {
				return err
			}
		}
		if req.Color != nil {
			if err := product.SetColor(*req.Color, now); err != nil {
				return err
			}
		}
		if req.Type != nil {
			if err := product.SetType(*req.Type, now); err != nil {
				return err
			}
		}
		if req.Fit != nil {
			if err := product.SetFit(domain.Fit(*req.Fit), now); err != nil {
				return err
			}
		}
		if req.Material != nil {
			if err := product.SetMaterial(*req.Material, now); err != nil {
				return err
			}
		}
		if req.Size != nil {
			if err := product.SetSize(domain.Size(*req.Size), now); err != nil {
				return err
			}
		}
		if req.Price != nil {
			if err := product.SetPrice(req.Price, now); err != nil {
				return err
			}
		}

		mut, err := i.repo.UpdateMut(product)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(mut)
		return txn.BufferWrite(plan.Mutations())
	})
}
