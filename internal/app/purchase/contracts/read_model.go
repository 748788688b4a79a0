package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/query"
)

// PurchaseDTO is a data transfer object for purchase queries.
type PurchaseDTO struct {
	PurchaseID    string
	CartID        string
	Total         float64 // Approximate representation for display
	PaymentMethod string
	CreatedAt     time.Time
}

// ReadModel defines the interface for purchase queries.
type ReadModel interface {
	// GetPurchaseByID retrieves a purchase DTO by ID.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*PurchaseDTO, error)

	// ListPurchases retrieves a page of purchases ordered by creation
	// time, most recent first.
	ListPurchases(ctx context.Context, page query.Page) ([]*PurchaseDTO, error)

	// ListPurchasesByUser retrieves the purchases finalized against any
	// of the user's carts. Returns the account's ErrUserNotFound for
	// an unknown user rather than an empty history.
	ListPurchasesByUser(ctx context.Context, userID string, page query.Page) ([]*PurchaseDTO, error)
}
