package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrCartNotFound = errors.New("cart not found")

	// ErrCartConflict signals a violation of open-cart uniqueness: a
	// second open cart for one user, or more than one open cart found
	// where exactly one must exist.
	ErrCartConflict = errors.New("user already has an open cart")

	// ErrCartClosed is returned for item mutations against a cart that
	// is no longer open. Closed is terminal; there is no reopen.
	ErrCartClosed = errors.New("cannot modify a closed cart")

	// ErrItemNotFound means the product has no line item in this cart.
	ErrItemNotFound = errors.New("product not found in cart")

	// ErrInvalidQuantity covers non-positive quantities and removals
	// that exceed the line quantity.
	ErrInvalidQuantity = errors.New("invalid item quantity")
)
