package domain

import (
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// Purchase is an immutable snapshot record finalizing exactly one cart
// into a priced order. It references its source cart without owning it;
// the cart lives on, closed, after checkout.
type Purchase struct {
	id            string
	cartID        string
	total         *money.Money
	paymentMethod string
	createdAt     time.Time
}

// NewPurchase creates a Purchase. The total is computed by the
// finalization transaction, never supplied by callers.
func NewPurchase(id, cartID string, total *money.Money, paymentMethod string, now time.Time) (*Purchase, error) {
	if paymentMethod == "" {
		return nil, ErrEmptyPaymentMethod
	}

	return &Purchase{
		id:            id,
		cartID:        cartID,
		total:         total.Copy(),
		paymentMethod: paymentMethod,
		createdAt:     now,
	}, nil
}

// ReconstructPurchase reconstitutes a Purchase from the database.
func ReconstructPurchase(id, cartID string, total *money.Money, paymentMethod string, createdAt time.Time) *Purchase {
	return &Purchase{
		id:            id,
		cartID:        cartID,
		total:         total,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
	}
}

// Getters
func (p *Purchase) ID() string            { return p.id }
func (p *Purchase) CartID() string        { return p.cartID }
func (p *Purchase) Total() *money.Money   { return p.total.Copy() }
func (p *Purchase) PaymentMethod() string { return p.paymentMethod }
func (p *Purchase) CreatedAt() time.Time  { return p.createdAt }
