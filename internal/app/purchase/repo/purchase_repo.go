package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/app/purchase/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_purchase"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// PurchaseRepo implements PurchaseRepository for Spanner.
type PurchaseRepo struct {
	model *m_purchase.Model
}

// NewPurchaseRepo creates a new PurchaseRepo.
func NewPurchaseRepo() contracts.PurchaseRepository {
	return &PurchaseRepo{
		model: m_purchase.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a purchase.
func (r *PurchaseRepo) InsertMut(purchase *domain.Purchase) (*spanner.Mutation, error) {
	total := purchase.Total()
	num, err := total.Numerator()
	if err != nil {
		return nil, fmt.Errorf("total exceeds storage capacity: %w", err)
	}
	denom, err := total.Denominator()
	if err != nil {
		return nil, fmt.Errorf("total exceeds storage capacity: %w", err)
	}

	return r.model.InsertMut(&m_purchase.Data{
		PurchaseID:       purchase.ID(),
		CartID:           purchase.CartID(),
		TotalNumerator:   num,
		TotalDenominator: denom,
		PaymentMethod:    purchase.PaymentMethod(),
		CreatedAt:        purchase.CreatedAt(),
	}), nil
}

// DeleteMut creates a mutation deleting the purchase row.
func (r *PurchaseRepo) DeleteMut(purchaseID string) *spanner.Mutation {
	return r.model.DeleteMut(purchaseID)
}

// GetByID retrieves a purchase by ID, reconstructing the domain aggregate.
func (r *PurchaseRepo) GetByID(ctx context.Context, rd committer.Reader, purchaseID string) (*domain.Purchase, error) {
	row, err := rd.ReadRow(ctx, m_purchase.TableName, spanner.Key{purchaseID}, m_purchase.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to read purchase: %w", err)
	}

	var data m_purchase.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse purchase: %w", err)
	}

	return r.dataToDomain(&data)
}

// ExistsForCart checks whether any purchase already finalized the cart.
func (r *PurchaseRepo) ExistsForCart(ctx context.Context, rd committer.Reader, cartID string) (bool, error) {
	stmt := query.From(m_purchase.TableName).
		Select(m_purchase.PurchaseID).
		Where(query.Eq(m_purchase.CartID, cartID)).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check purchase existence: %w", err)
	}
	return true, nil
}

// IDsForCarts returns the IDs of all purchases referencing any of the
// given carts.
func (r *PurchaseRepo) IDsForCarts(ctx context.Context, rd committer.Reader, cartIDs []string) ([]string, error) {
	if len(cartIDs) == 0 {
		return []string{}, nil
	}

	stmt := query.From(m_purchase.TableName).
		Select(m_purchase.PurchaseID).
		Where(query.In(m_purchase.CartID, cartIDs)).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	ids := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate purchases: %w", err)
		}

		var id string
		if err := row.Columns(&id); err != nil {
			return nil, fmt.Errorf("failed to parse purchase id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *PurchaseRepo) dataToDomain(data *m_purchase.Data) (*domain.Purchase, error) {
	total, err := money.New(data.TotalNumerator, data.TotalDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored total: %w", err)
	}

	return domain.ReconstructPurchase(
		data.PurchaseID,
		data.CartID,
		total,
		data.PaymentMethod,
		data.CreatedAt,
	), nil
}
