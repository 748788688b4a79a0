package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// CartItemDTO is a data transfer object for one cart line item.
type CartItemDTO struct {
	ProductID string
	Quantity  int64
}

// CartDTO is a data transfer object for cart queries.
type CartDTO struct {
	CartID    string
	UserID    string
	IsOpen    bool
	Items     []CartItemDTO
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReadModel defines the interface for cart queries.
type ReadModel interface {
	// GetCartByID retrieves a cart DTO with its line items.
	GetCartByID(ctx context.Context, cartID string) (*CartDTO, error)

	// GetOpenCartByUser retrieves the user's single open cart.
	// Returns the account's ErrUserNotFound for an unknown user,
	// ErrCartNotFound when the user has none and ErrCartConflict
	// when more than one is open.
	GetOpenCartByUser(ctx context.Context, userID string) (*CartDTO, error)

	// ListCarts retrieves a page of carts ordered by creation time.
	ListCarts(ctx context.Context, page query.Page) ([]*CartDTO, error)
}
