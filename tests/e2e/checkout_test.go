package e2e

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_open_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/close_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/delete_cart"
	catalogdomain "github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	purchasedomain "github.com/light-bringer/checkout-service/internal/app/purchase/domain"
	"github.com/light-bringer/checkout-service/internal/app/purchase/queries/get_purchase"
	"github.com/light-bringer/checkout-service/internal/app/purchase/queries/list_purchases"
	"github.com/light-bringer/checkout-service/internal/app/purchase/usecases/create_purchase"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
	"github.com/light-bringer/checkout-service/tests/testutil"
)

func TestCheckoutComputesExactTotal(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "total@example.com")
	tee := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)      // 19.99
	hoodie := testutil.CreateTestProduct(t, services.Client, "Hoodie", 7000, 100) // 70.00

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: tee, Quantity: 2})
	require.NoError(t, err)
	_, err = services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: hoodie, Quantity: 1})
	require.NoError(t, err)

	res, err := services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.PurchaseID)

	// 2 * 19.99 + 70.00 = 109.98, exactly.
	want, err := money.New(10998, 100)
	require.NoError(t, err)
	assert.True(t, res.Total.Equals(want), "got total %s, want %s", res.Total, want)

	dto, err := services.GetPurchase.Execute(ctx(), &get_purchase.Request{PurchaseID: res.PurchaseID})
	require.NoError(t, err)
	assert.Equal(t, cartID, dto.CartID)
	assert.Equal(t, "credit_card", dto.PaymentMethod)
	assert.InDelta(t, 109.98, dto.Total, 0.0001)
}

func TestCheckoutClosesCartAndOpensReplacement(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	userID, cartID := registerUser(t, services, "replacement@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	res, err := services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	// The purchased cart is closed with its lines intact.
	oldCart, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	assert.False(t, oldCart.IsOpen)
	assert.Len(t, oldCart.Items, 1)

	// The replacement cart is the user's new open cart, and it is empty.
	openCart, err := services.GetOpenCart.Execute(ctx(), &get_open_cart.Request{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, res.CartID, openCart.CartID)
	assert.Empty(t, openCart.Items)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "emptycart@example.com")

	_, err := services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	assert.ErrorIs(t, err, purchasedomain.ErrEmptyCart)
}

func TestCheckoutRejectsClosedCart(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "closedcheckout@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, services.CloseCart.Execute(ctx(), &close_cart.Request{CartID: cartID}))

	_, err = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	assert.ErrorIs(t, err, purchasedomain.ErrCartNotOpen)
}

func TestCheckoutRejectsEmptyPaymentMethod(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "nopayment@example.com")

	_, err := services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID: cartID,
	})
	assert.ErrorIs(t, err, purchasedomain.ErrEmptyPaymentMethod)
}

func TestCheckoutCannotRunTwiceForOneCart(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "doublebuy@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	// The first checkout closed the cart, so a repeat is rejected.
	_, err = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	assert.ErrorIs(t, err, purchasedomain.ErrCartNotOpen)

	testutil.AssertRowCount(t, services.Client, "purchases", 1)
}

func TestCheckoutRejectsVanishedProduct(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "vanished@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	// Product removed from the catalog between carting and checkout.
	_, err = services.Client.Apply(ctx(), []*spanner.Mutation{spanner.Delete("products", spanner.Key{productID})})
	require.NoError(t, err)

	_, err = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)

	// Nothing was committed.
	testutil.AssertRowCount(t, services.Client, "purchases", 0)
	cart, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	assert.True(t, cart.IsOpen)
}

func TestDeleteCartReferencedByPurchase(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "deletebought@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
		CartID:        cartID,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	err = services.DeleteCart.Execute(ctx(), &delete_cart.Request{CartID: cartID})
	assert.ErrorIs(t, err, cartdomain.ErrCartConflict)
}

func TestListPurchasesByUser(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	userID, cartID := registerUser(t, services, "buyer@example.com")
	_, otherCartID := registerUser(t, services, "other@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	for _, id := range []string{cartID, otherCartID} {
		_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: id, ProductID: productID, Quantity: 1})
		require.NoError(t, err)
		_, err = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
			CartID:        id,
			PaymentMethod: "pix",
		})
		require.NoError(t, err)
	}

	purchases, err := services.ListPurchases.Execute(ctx(), &list_purchases.Request{UserID: userID})
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, cartID, purchases[0].CartID)

	all, err := services.ListPurchases.Execute(ctx(), &list_purchases.Request{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPurchasesUnknownUser(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	// An unknown user is an error, not an empty history.
	_, err := services.ListPurchases.Execute(ctx(), &list_purchases.Request{UserID: uuid.NewString()})
	assert.ErrorIs(t, err, accountdomain.ErrUserNotFound)
}
