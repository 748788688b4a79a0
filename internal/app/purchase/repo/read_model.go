package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/app/purchase/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_cart"
	"github.com/light-bringer/checkout-service/internal/models/m_purchase"
	"github.com/light-bringer/checkout-service/internal/models/m_user"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// ReadModelImpl implements the purchase ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetPurchaseByID retrieves a purchase DTO by ID.
func (rm *ReadModelImpl) GetPurchaseByID(ctx context.Context, purchaseID string) (*contracts.PurchaseDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_purchase.TableName, spanner.Key{purchaseID}, m_purchase.AllColumns)
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

	return dataToDTO(&data)
}

// ListPurchases retrieves a page of purchases, most recent first.
func (rm *ReadModelImpl) ListPurchases(ctx context.Context, page query.Page) ([]*contracts.PurchaseDTO, error) {
	stmt := query.From(m_purchase.TableName).
		Select(m_purchase.AllColumns...).
		OrderBy(m_purchase.CreatedAt, query.Desc).
		Paginate(page).
		Build()

	return rm.collect(ctx, rm.client.Single(), stmt)
}

// ListPurchasesByUser retrieves the purchases finalized against any of
// the user's carts. An unknown user is an error, not an empty history.
// Purchases reference users only through their cart, so the existence
// check and the cart ID resolution share one read snapshot.
func (rm *ReadModelImpl) ListPurchasesByUser(ctx context.Context, userID string, page query.Page) ([]*contracts.PurchaseDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	if _, err := txn.ReadRow(ctx, m_user.TableName, spanner.Key{userID}, []string{m_user.UserID}); err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	cartStmt := query.From(m_cart.TableName).
		Select(m_cart.CartID).
		Where(query.Eq(m_cart.UserID, userID)).
		Build()

	iter := txn.Query(ctx, cartStmt)
	defer iter.Stop()

	cartIDs := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate carts: %w", err)
		}

		var id string
		if err := row.Columns(&id); err != nil {
			return nil, fmt.Errorf("failed to parse cart id: %w", err)
		}
		cartIDs = append(cartIDs, id)
	}

	if len(cartIDs) == 0 {
		return []*contracts.PurchaseDTO{}, nil
	}

	stmt := query.From(m_purchase.TableName).
		Select(m_purchase.AllColumns...).
		Where(query.In(m_purchase.CartID, cartIDs)).
		OrderBy(m_purchase.CreatedAt, query.Desc).
		Paginate(page).
		Build()

	return rm.collect(ctx, txn, stmt)
}

type queryer interface {
	Query(ctx context.Context, stmt spanner.Statement) *spanner.RowIterator
}

func (rm *ReadModelImpl) collect(ctx context.Context, q queryer, stmt spanner.Statement) ([]*contracts.PurchaseDTO, error) {
	iter := q.Query(ctx, stmt)
	defer iter.Stop()

	purchases := make([]*contracts.PurchaseDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate purchases: %w", err)
		}

		var data m_purchase.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse purchase: %w", err)
		}

		dto, err := dataToDTO(&data)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, dto)
	}
	return purchases, nil
}

func dataToDTO(data *m_purchase.Data) (*contracts.PurchaseDTO, error) {
	total, err := money.New(data.TotalNumerator, data.TotalDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid stored total: %w", err)
	}

	return &contracts.PurchaseDTO{
		PurchaseID:    data.PurchaseID,
		CartID:        data.CartID,
		Total:         total.Float64(),
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
	}, nil
}
