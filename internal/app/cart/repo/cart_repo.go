package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	"github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/models/m_cart"
	"github.com/light-bringer/checkout-service/internal/models/m_cart_item"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// CartRepo implements CartRepository for Spanner.
type CartRepo struct {
	cartModel *m_cart.Model
	itemModel *m_cart_item.Model
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo() contracts.CartRepository {
	return &CartRepo{
		cartModel: m_cart.NewModel(),
		itemModel: m_cart_item.NewModel(),
	}
}

// InsertMut creates a mutation for inserting an empty cart row.
func (r *CartRepo) InsertMut(cart *domain.Cart) *spanner.Mutation {
	return r.cartModel.InsertMut(&m_cart.Data{
		CartID:    cart.ID(),
		UserID:    cart.UserID(),
		IsOpen:    cart.IsOpen(),
		CreatedAt: cart.CreatedAt(),
		UpdatedAt: cart.UpdatedAt(),
	})
}

// CloseMut creates a mutation flipping the cart to closed.
func (r *CartRepo) CloseMut(cartID string, now time.Time) *spanner.Mutation {
	return r.cartModel.CloseMut(cartID, now)
}

// DeleteMut creates a mutation deleting the cart row; interleaved line
// items go with it.
func (r *CartRepo) DeleteMut(cartID string) *spanner.Mutation {
	return r.cartModel.DeleteMut(cartID)
}

// InsertItemMut creates a mutation for a brand-new line item.
func (r *CartRepo) InsertItemMut(item *domain.CartItem, now time.Time) *spanner.Mutation {
	return r.itemModel.InsertMut(&m_cart_item.Data{
		CartID:    item.CartID(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		AddedAt:   now,
		UpdatedAt: now,
	})
}

// UpdateItemQuantityMut creates a mutation rewriting an existing line's
// quantity.
func (r *CartRepo) UpdateItemQuantityMut(cartID, productID string, quantity int64, now time.Time) *spanner.Mutation {
	return r.itemModel.UpdateQuantityMut(cartID, productID, quantity, now)
}

// DeleteItemMut creates a mutation deleting one line item.
func (r *CartRepo) DeleteItemMut(cartID, productID string) *spanner.Mutation {
	return r.itemModel.DeleteMut(cartID, productID)
}

// GetByID retrieves a cart with its line items in insertion order.
func (r *CartRepo) GetByID(ctx context.Context, rd committer.Reader, cartID string) (*domain.Cart, error) {
	row, err := rd.ReadRow(ctx, m_cart.TableName, spanner.Key{cartID}, m_cart.AllColumns)
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

	items, err := r.readItems(ctx, rd, cartID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructCart(
		data.CartID,
		data.UserID,
		data.IsOpen,
		items,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

// OpenCartIDs returns the IDs of the user's open carts.
func (r *CartRepo) OpenCartIDs(ctx context.Context, rd committer.Reader, userID string) ([]string, error) {
	stmt := query.From(m_cart.TableName).
		Select(m_cart.CartID).
		Where(query.Eq(m_cart.UserID, userID)).
		Where(query.Eq(m_cart.IsOpen, true)).
		OrderBy(m_cart.CreatedAt, query.Asc).
		Build()

	return r.collectIDs(ctx, rd, stmt)
}

// CartIDsByUser returns the IDs of all carts ever owned by the user.
func (r *CartRepo) CartIDsByUser(ctx context.Context, rd committer.Reader, userID string) ([]string, error) {
	stmt := query.From(m_cart.TableName).
		Select(m_cart.CartID).
		Where(query.Eq(m_cart.UserID, userID)).
		OrderBy(m_cart.CreatedAt, query.Asc).
		Build()

	return r.collectIDs(ctx, rd, stmt)
}

func (r *CartRepo) collectIDs(ctx context.Context, rd committer.Reader, stmt spanner.Statement) ([]string, error) {
	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	ids := make([]string, 0)
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
		ids = append(ids, id)
	}
	return ids, nil
}

// readItems loads the cart's line items in the order they were first
// added. AddedAt never moves after insert, so merges don't reorder.
func (r *CartRepo) readItems(ctx context.Context, rd committer.Reader, cartID string) ([]*domain.CartItem, error) {
	stmt := query.From(m_cart_item.TableName).
		Select(m_cart_item.AllColumns...).
		Where(query.Eq(m_cart_item.CartID, cartID)).
		OrderBy(m_cart_item.AddedAt, query.Asc).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	items := make([]*domain.CartItem, 0)
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
		items = append(items, domain.NewCartItem(data.CartID, data.ProductID, data.Quantity))
	}
	return items, nil
}
