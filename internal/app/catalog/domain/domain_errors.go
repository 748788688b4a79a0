package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrEmptyColor       = errors.New("product color cannot be empty")
	ErrEmptyType        = errors.New("product type cannot be empty")
	ErrEmptyMaterial    = errors.New("product material cannot be empty")
	ErrInvalidFit       = errors.New("invalid fit descriptor")
	ErrInvalidSize      = errors.New("invalid size descriptor")
	ErrNegativePrice    = errors.New("product price must be non-negative")
)
