package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrPurchaseConflict means a purchase already exists for the cart.
	// A cart can be purchased exactly once.
	ErrPurchaseConflict = errors.New("a purchase already exists for this cart")

	// ErrCartNotOpen is the finalization-path "closed" failure. It is a
	// conflict, distinct from the cart engine's closed-mutation error:
	// finalizing a closed cart twice collides with the purchase that
	// closed it.
	ErrCartNotOpen = errors.New("cannot purchase a closed cart")

	// ErrEmptyCart rejects checkout of a cart with no line items.
	ErrEmptyCart = errors.New("cannot purchase an empty cart")

	ErrEmptyPaymentMethod = errors.New("payment method cannot be empty")
)
