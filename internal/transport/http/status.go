package http

import (
	"errors"
	"net/http"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	purchasedomain "github.com/light-bringer/checkout-service/internal/app/purchase/domain"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
	"github.com/light-bringer/checkout-service/internal/pkg/token"
)

var notFoundErrors = []error{
	accountdomain.ErrUserNotFound,
	catalogdomain.ErrProductNotFound,
	cartdomain.ErrCartNotFound,
	cartdomain.ErrItemNotFound,
	purchasedomain.ErrPurchaseNotFound,
}

var conflictErrors = []error{
	accountdomain.ErrUserConflict,
	cartdomain.ErrCartConflict,
	cartdomain.ErrCartClosed,
	purchasedomain.ErrPurchaseConflict,
	purchasedomain.ErrCartNotOpen,
}

var invalidInputErrors = []error{
	accountdomain.ErrEmptyName,
	accountdomain.ErrEmptyEmail,
	accountdomain.ErrEmptyPassword,
	catalogdomain.ErrEmptyName,
	catalogdomain.ErrEmptyColor,
	catalogdomain.ErrEmptyType,
	catalogdomain.ErrEmptyMaterial,
	catalogdomain.ErrInvalidFit,
	catalogdomain.ErrInvalidSize,
	catalogdomain.ErrNegativePrice,
	cartdomain.ErrInvalidQuantity,
	purchasedomain.ErrEmptyCart,
	purchasedomain.ErrEmptyPaymentMethod,
	query.ErrInvalidPage,
	money.ErrInvalidAmount,
}

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, accountdomain.ErrInvalidCredentials),
		errors.Is(err, token.ErrInvalidToken):
		return http.StatusUnauthorized
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound
	case matchesAny(err, conflictErrors):
		return http.StatusConflict
	case matchesAny(err, invalidInputErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
