package e2e

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountdomain "github.com/light-bringer/checkout-service/internal/app/account/domain"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/register_user"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_open_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/close_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/create_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/remove_item"
	catalogdomain "github.com/light-bringer/checkout-service/internal/app/catalog/domain"
	"github.com/light-bringer/checkout-service/tests/testutil"
)

// registerUser creates an account and returns its ID together with the
// ID of the open cart that registration created for it.
func registerUser(t *testing.T, services *Services, email string) (string, string) {
	t.Helper()

	res, err := services.RegisterUser.Execute(ctx(), &register_user.Request{
		Name:     "Test User",
		Email:    email,
		Password: "s3cret",
	})
	require.NoError(t, err)
	return res.UserID, res.CartID
}

func TestAddItemMergesIntoExistingLine(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "merge@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	cart, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	// One line, quantities merged.
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, int64(5), cart.Item(productID).Quantity())

	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, int64(5), dto.Items[0].Quantity)
}

func TestAddItemPreservesLineOrder(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "order@example.com")
	first := testutil.CreateTestProduct(t, services.Client, "First", 1000, 100)
	second := testutil.CreateTestProduct(t, services.Client, "Second", 2000, 100)

	for _, productID := range []string{first, second, first} {
		_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
		require.NoError(t, err)
	}

	// Merging into the first line does not move it behind the second.
	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	require.Len(t, dto.Items, 2)
	assert.Equal(t, first, dto.Items[0].ProductID)
	assert.Equal(t, int64(2), dto.Items[0].Quantity)
	assert.Equal(t, second, dto.Items[1].ProductID)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "zeroqty@example.com")

	// The quantity is vetted before anything is looked up, so a product
	// that does not exist never gets a say.
	for _, quantity := range []int64{0, -1} {
		_, err := services.AddItem.Execute(ctx(), &add_item.Request{
			CartID:    cartID,
			ProductID: uuid.NewString(),
			Quantity:  quantity,
		})
		assert.ErrorIs(t, err, cartdomain.ErrInvalidQuantity)
	}
}

func TestAddItemUnknownCart(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	registerUser(t, services, "nocart@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{
		CartID:    uuid.NewString(),
		ProductID: productID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, cartdomain.ErrCartNotFound)
}

func TestAddItemUnknownProduct(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "noproduct@example.com")

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{
		CartID:    cartID,
		ProductID: uuid.NewString(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestRemoveItemDecrementsAndDeletesAtZero(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "remove@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 3})
	require.NoError(t, err)

	cart, err := services.RemoveItem.Execute(ctx(), &remove_item.Request{CartID: cartID, ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cart.Item(productID).Quantity())

	// Removing the rest deletes the line entirely.
	cart, err = services.RemoveItem.Execute(ctx(), &remove_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	assert.Empty(t, dto.Items)
}

func TestRemoveItemRejectsOverRemoval(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "overremove@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 2})
	require.NoError(t, err)

	_, err = services.RemoveItem.Execute(ctx(), &remove_item.Request{CartID: cartID, ProductID: productID, Quantity: 3})
	assert.ErrorIs(t, err, cartdomain.ErrInvalidQuantity)

	// The line is untouched.
	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, int64(2), dto.Items[0].Quantity)
}

func TestRemoveItemMissingLine(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "missingline@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.RemoveItem.Execute(ctx(), &remove_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrItemNotFound)
}

func TestClosedCartRejectsItemChanges(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "closed@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, services.CloseCart.Execute(ctx(), &close_cart.Request{CartID: cartID}))

	// The closed cart is still addressable, but its lines are frozen.
	_, err = services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrCartClosed)

	_, err = services.RemoveItem.Execute(ctx(), &remove_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, cartdomain.ErrCartClosed)

	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, int64(1), dto.Items[0].Quantity)
}

func TestCloseCartIsIdempotent(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "idempotent@example.com")

	require.NoError(t, services.CloseCart.Execute(ctx(), &close_cart.Request{CartID: cartID}))
	require.NoError(t, services.CloseCart.Execute(ctx(), &close_cart.Request{CartID: cartID}))

	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	assert.False(t, dto.IsOpen)
}

func TestOneOpenCartPerUser(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	userID, cartID := registerUser(t, services, "onecart@example.com")

	// Registration already opened a cart, so another is rejected.
	_, err := services.CreateCart.Execute(ctx(), &create_cart.Request{UserID: userID})
	assert.ErrorIs(t, err, cartdomain.ErrCartConflict)

	// Once the open cart is closed a new one may be created.
	require.NoError(t, services.CloseCart.Execute(ctx(), &close_cart.Request{CartID: cartID}))

	res, err := services.CreateCart.Execute(ctx(), &create_cart.Request{UserID: userID})
	require.NoError(t, err)
	assert.NotEqual(t, cartID, res)

	openCart, err := services.GetOpenCart.Execute(ctx(), &get_open_cart.Request{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, res, openCart.CartID)
}

func TestSecondOpenCartIsAConflict(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	userID, _ := registerUser(t, services, "twocarts@example.com")

	// A second open cart written behind the engine's back makes the
	// user's open-cart state ambiguous, and every path that has to pick
	// one refuses.
	testutil.CreateTestCart(t, services.Client, userID, true)

	_, err := services.GetOpenCart.Execute(ctx(), &get_open_cart.Request{UserID: userID})
	assert.ErrorIs(t, err, cartdomain.ErrCartConflict)

	_, err = services.CreateCart.Execute(ctx(), &create_cart.Request{UserID: userID})
	assert.ErrorIs(t, err, cartdomain.ErrCartConflict)
}

func TestGetOpenCartUnknownUser(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, err := services.GetOpenCart.Execute(ctx(), &get_open_cart.Request{UserID: uuid.NewString()})
	assert.ErrorIs(t, err, accountdomain.ErrUserNotFound)
}
