//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	accountrepo "github.com/light-bringer/checkout-service/internal/app/account/repo"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	cartrepo "github.com/light-bringer/checkout-service/internal/app/cart/repo"
	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	catalogrepo "github.com/light-bringer/checkout-service/internal/app/catalog/repo"
	purchaserepo "github.com/light-bringer/checkout-service/internal/app/purchase/repo"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/internal/pkg/query"
	"github.com/light-bringer/checkout-service/tests/testutil"
)

func TestProductReadModel_ListProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := catalogrepo.NewReadModel(client)

	testutil.CreateTestProduct(t, client, "Basic Tee", 1999, 100)
	testutil.CreateTestProduct(t, client, "Premium Tee", 4999, 100)
	testutil.CreateTestProduct(t, client, "Hoodie", 6999, 100)

	page, err := query.NewPage(nil, nil)
	require.NoError(t, err)

	t.Run("list all", func(t *testing.T) {
		dtos, err := readModel.ListProducts(ctx, &contracts.ListFilter{}, page)
		require.NoError(t, err)
		assert.Len(t, dtos, 3)
	})

	t.Run("filter by name substring", func(t *testing.T) {
		dtos, err := readModel.ListProducts(ctx, &contracts.ListFilter{Name: "Tee"}, page)
		require.NoError(t, err)
		assert.Len(t, dtos, 2)
	})

	t.Run("filter by price range", func(t *testing.T) {
		min, err := money.New(3000, 100)
		require.NoError(t, err)
		max, err := money.New(6000, 100)
		require.NoError(t, err)

		dtos, err := readModel.ListProducts(ctx, &contracts.ListFilter{MinPrice: min, MaxPrice: max}, page)
		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Premium Tee", dtos[0].Name)
	})

	t.Run("boundary price is included", func(t *testing.T) {
		exact, err := money.New(1999, 100)
		require.NoError(t, err)

		dtos, err := readModel.ListProducts(ctx, &contracts.ListFilter{MinPrice: exact, MaxPrice: exact}, page)
		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, "Basic Tee", dtos[0].Name)
	})
}

func TestCartReadModel_GetOpenCartByUser(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := cartrepo.NewReadModel(client)

	userID := testutil.CreateTestUser(t, client, "carts@example.com", "s3cret")

	t.Run("unknown user", func(t *testing.T) {
		_, err := readModel.GetOpenCartByUser(ctx, uuid.NewString())
		assert.ErrorIs(t, err, accountdomain.ErrUserNotFound)
	})

	t.Run("no open cart", func(t *testing.T) {
		_, err := readModel.GetOpenCartByUser(ctx, userID)
		assert.ErrorIs(t, err, cartdomain.ErrCartNotFound)
	})

	t.Run("single open cart with items", func(t *testing.T) {
		cartID := testutil.CreateTestCart(t, client, userID, true)
		productID := testutil.CreateTestProduct(t, client, "Tee", 1999, 100)
		testutil.AddTestCartItem(t, client, cartID, productID, 2)

		dto, err := readModel.GetOpenCartByUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, cartID, dto.CartID)
		assert.True(t, dto.IsOpen)
		require.Len(t, dto.Items, 1)
		assert.Equal(t, int64(2), dto.Items[0].Quantity)
	})

	t.Run("two open carts is a conflict", func(t *testing.T) {
		testutil.CreateTestCart(t, client, userID, true)

		_, err := readModel.GetOpenCartByUser(ctx, userID)
		assert.ErrorIs(t, err, cartdomain.ErrCartConflict)
	})
}

func TestPurchaseReadModel_ListPurchasesByUser(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	readModel := purchaserepo.NewReadModel(client)

	page, err := query.NewPage(nil, nil)
	require.NoError(t, err)

	userID := testutil.CreateTestUser(t, client, "history@example.com", "s3cret")

	t.Run("unknown user", func(t *testing.T) {
		_, err := readModel.ListPurchasesByUser(ctx, uuid.NewString(), page)
		assert.ErrorIs(t, err, accountdomain.ErrUserNotFound)
	})

	t.Run("known user with no purchases", func(t *testing.T) {
		dtos, err := readModel.ListPurchasesByUser(ctx, userID, page)
		require.NoError(t, err)
		assert.Empty(t, dtos)
	})
}

func TestUserRepo_GetByEmail(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	users := accountrepo.NewUserRepo()

	userID := testutil.CreateTestUser(t, client, "findme@example.com", "s3cret")

	t.Run("found", func(t *testing.T) {
		user, err := users.GetByEmail(ctx, client.Single(), "findme@example.com")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := users.GetByEmail(ctx, client.Single(), "ghost@example.com")
		assert.ErrorIs(t, err, accountdomain.ErrUserNotFound)
	})
}
