package e2e

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/close_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/create_cart"
	"github.com/light-bringer/checkout-service/internal/app/purchase/usecases/create_purchase"
	"github.com/light-bringer/checkout-service/tests/testutil"
)

// TestConcurrentAddsDoNotLoseQuantity runs several adds of the same
// product in parallel. Each read-merge-write cycle is one transaction,
// so the merged line must hold the full sum.
func TestConcurrentAddsDoNotLoseQuantity(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "parallel@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	const workers = 5

	var wg sync.WaitGroup
	errs := make([]error, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = services.AddItem.Execute(ctx(), &add_item.Request{
				CartID:    cartID,
				ProductID: productID,
				Quantity:  1,
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	dto, err := services.GetCart.Execute(ctx(), &get_cart.Request{CartID: cartID})
	require.NoError(t, err)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, int64(workers), dto.Items[0].Quantity)
}

// TestConcurrentCheckoutsOfOneCart races two checkouts of the same
// cart. Exactly one purchase may be committed.
func TestConcurrentCheckoutsOfOneCart(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	_, cartID := registerUser(t, services, "racingbuyer@example.com")
	productID := testutil.CreateTestProduct(t, services.Client, "Tee", 1999, 100)

	_, err := services.AddItem.Execute(ctx(), &add_item.Request{CartID: cartID, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var err1, err2 error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err1 = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
			CartID:        cartID,
			PaymentMethod: "pix",
		})
	}()
	go func() {
		defer wg.Done()
		_, err2 = services.CreatePurchase.Execute(ctx(), &create_purchase.Request{
			CartID:        cartID,
			PaymentMethod: "credit_card",
		})
	}()
	wg.Wait()

	succeeded := 0
	for _, err := range []error{err1, err2} {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one checkout must win, got err1=%v err2=%v", err1, err2)

	testutil.AssertRowCount(t, services.Client, "purchases", 1)
}

// TestConcurrentCartCreation races two cart creations for a user with
// no open cart. At most one may succeed.
func TestConcurrentCartCreation(t *testing.T) {
	services, cleanup := setupTest(t)
	defer cleanup()

	userID, cartID := registerUser(t, services, "racingcarts@example.com")
	require.NoError(t, services.CloseCart.Execute(ctx(), &close_cart.Request{CartID: cartID}))

	var wg sync.WaitGroup
	var err1, err2 error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err1 = services.CreateCart.Execute(ctx(), &create_cart.Request{UserID: userID})
	}()
	go func() {
		defer wg.Done()
		_, err2 = services.CreateCart.Execute(ctx(), &create_cart.Request{UserID: userID})
	}()
	wg.Wait()

	succeeded := 0
	for _, err := range []error{err1, err2} {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, cartdomain.ErrCartConflict)
		}
	}
	assert.Equal(t, 1, succeeded)
}
