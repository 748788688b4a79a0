package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/checkout-service/internal/models/m_cart"
	"github.com/light-bringer/checkout-service/internal/models/m_cart_item"
	"github.com/light-bringer/checkout-service/internal/models/m_product"
	"github.com/light-bringer/checkout-service/internal/models/m_user"
)

// CreateTestUser creates a user directly in the database and returns its ID.
// The password is stored bcrypt-hashed, so login works against it.
func CreateTestUser(t *testing.T, client *spanner.Client, email, password string) string {
	t.Helper()
	return createUser(t, client, email, password, false)
}

// CreateTestAdmin creates an admin user directly in the database.
func CreateTestAdmin(t *testing.T, client *spanner.Client, email, password string) string {
	t.Helper()
	return createUser(t, client, email, password, true)
}

func createUser(t *testing.T, client *spanner.Client, email, password string, admin bool) string {
	t.Helper()

	ctx := context.Background()
	userID := uuid.New().String()
	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err, "failed to hash test password")

	model := m_user.NewModel()
	data := &m_user.Data{
		UserID:       userID,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Admin:        admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test user")

	return userID
}

// CreateTestProduct creates a product with the given price directly in
// the database. The price is a rational in cents over 100, e.g.
// (1999, 100) for 19.99.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, priceNum, priceDenom int64) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()
	now := time.Now()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:        productID,
		Name:             name,
		Color:            "Black",
		ProductType:      "TShirt",
		Fit:              "Regular",
		Material:         "Cotton",
		Size:             "M",
		PriceNumerator:   priceNum,
		PriceDenominator: priceDenom,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestCart creates a cart for the user directly in the database.
func CreateTestCart(t *testing.T, client *spanner.Client, userID string, open bool) string {
	t.Helper()

	ctx := context.Background()
	cartID := uuid.New().String()
	now := time.Now()

	model := m_cart.NewModel()
	data := &m_cart.Data{
		CartID:    cartID,
		UserID:    userID,
		IsOpen:    open,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test cart")

	return cartID
}

// AddTestCartItem inserts a line item into an existing cart.
func AddTestCartItem(t *testing.T, client *spanner.Client, cartID, productID string, quantity int64) {
	t.Helper()

	ctx := context.Background()
	now := time.Now()

	model := m_cart_item.NewModel()
	data := &m_cart_item.Data{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   now,
		UpdatedAt: now,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to add test cart item")
}
