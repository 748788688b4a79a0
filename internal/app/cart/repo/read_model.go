package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_cart"
	"github.com/light-bringer/checkout-service/internal/models/m_cart_item"
	"github.com/light-bringer/checkout-service/internal/models/m_user"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// ReadModelImpl implements the cart ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetCartByID retrieves a cart DTO with its line items.
func (rm *ReadModelImpl) GetCartByID(ctx context.Context, cartID string) (*contracts.CartDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_cart.TableName, spanner.Key{cartID}, m_cart.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var data m_cart.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}

	itemsByCart, err := rm.readItems(ctx, txn, []string{cartID})
	if err != nil {
		return nil, err
	}

	return dataToCartDTO(&data, itemsByCart[cartID]), nil
}

// GetOpenCartByUser retrieves the user's single open cart. An unknown
// user reads as user-not-found, zero open carts as cart-not-found;
// more than one means the one-open-cart invariant was violated out of
// band and is reported as a conflict.
func (rm *ReadModelImpl) GetOpenCartByUser(ctx context.Context, userID string) (*contracts.CartDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	if _, err := txn.ReadRow(ctx, m_user.TableName, spanner.Key{userID}, []string{m_user.UserID}); err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, accountdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	stmt := query.From(m_cart.TableName).
		Select(m_cart.AllColumns...).
		Where(query.Eq(m_cart.UserID, userID)).
		Where(query.Eq(m_cart.IsOpen, true)).
		OrderBy(m_cart.CreatedAt, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	open := make([]*m_cart.Data, 0, 1)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate carts: %w", err)
		}

		var data m_cart.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse cart: %w", err)
		}
		open = append(open, &data)
	}

	switch len(open) {
	case 0:
		return nil, domain.ErrCartNotFound
	case 1:
	default:
		return nil, fmt.Errorf("user %s has %d open carts: %w", userID, len(open), domain.ErrCartConflict)
	}

	itemsByCart, err := rm.readItems(ctx, txn, []string{open[0].CartID})
	if err != nil {
		return nil, err
	}

	return dataToCartDTO(open[0], itemsByCart[open[0].CartID]), nil
}

// ListCarts retrieves a page of carts ordered by creation time.
func (rm *ReadModelImpl) ListCarts(ctx context.Context, page query.Page) ([]*contracts.CartDTO, error) {
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	stmt := query.From(m_cart.TableName).
		Select(m_cart.AllColumns...).
		OrderBy(m_cart.CreatedAt, query.Asc).
		Paginate(page).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	carts := make([]*m_cart.Data, 0)
	ids := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate carts: %w", err)
		}

		var data m_cart.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse cart: %w", err)
		}
		carts = append(carts, &data)
		ids = append(ids, data.CartID)
	}

	if len(carts) == 0 {
		return []*contracts.CartDTO{}, nil
	}

	itemsByCart, err := rm.readItems(ctx, txn, ids)
	if err != nil {
		return nil, err
	}

	dtos := make([]*contracts.CartDTO, 0, len(carts))
	for _, data := range carts {
		dtos = append(dtos, dataToCartDTO(data, itemsByCart[data.CartID]))
	}
	return dtos, nil
}

// readItems loads line items for a batch of carts in one query.
func (rm *ReadModelImpl) readItems(ctx context.Context, txn *spanner.ReadOnlyTransaction, cartIDs []string) (map[string][]contracts.CartItemDTO, error) {
	stmt := query.From(m_cart_item.TableName).
		Select(m_cart_item.AllColumns...).
		Where(query.In(m_cart_item.CartID, cartIDs)).
		OrderBy(m_cart_item.AddedAt, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	itemsByCart := make(map[string][]contracts.CartItemDTO)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cart items: %w", err)
		}

		var data m_cart_item.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse cart item: %w", err)
		}
		itemsByCart[data.CartID] = append(itemsByCart[data.CartID], contracts.CartItemDTO{
			ProductID: data.ProductID,
			Quantity:  data.Quantity,
		})
	}
	return itemsByCart, nil
}

func dataToCartDTO(data *m_cart.Data, items []contracts.CartItemDTO) *contracts.CartDTO {
	if items == nil {
		items = []contracts.CartItemDTO{}
	}
	return &contracts.CartDTO{
		CartID:    data.CartID,
		UserID:    data.UserID,
		IsOpen:    data.IsOpen,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
