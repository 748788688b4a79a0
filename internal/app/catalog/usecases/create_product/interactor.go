package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// Request contains the data needed to create a product.
type Request struct {
	Name     string
	Color    string
	Type     string
	Fit      string
	Material string
	Size     string
	Price    *money.Money
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(repo contracts.ProductRepository, cmt *committer.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: cmt,
		clock:     clk,
	}
}

// Execute creates a new product and returns its ID.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	product, err := domain.NewProduct(
		uuid.New().String(),
		req.Name,
		req.Color,
		req.Type,
		domain.Fit(req.Fit),
		req.Material,
		domain.Size(req.Size),
		req.Price,
		i.clock.Now(),
	)
	if err != nil {
		return "", err
	}

	mut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", err
	}

	plan := committer.NewPlan()
	plan.Add(mut)
	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return product.ID(), nil
}
