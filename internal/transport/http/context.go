package http

import (
	"context"
	"errors"

	"github.com/light-bringer/checkout-service/internal/pkg/token"
)

type contextKey int

const claimsKey contextKey = iota

// ErrNoClaims is returned when a handler asks for the caller identity
// on an unauthenticated request.
var ErrNoClaims = errors.New("no authenticated caller in context")

func withClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// callerFrom extracts the verified caller claims from the request
// context.
func callerFrom(ctx context.Context) (*token.Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
