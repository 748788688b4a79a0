package e2e

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/checkout-service/internal/app/account/queries/get_user"
	"github.com/light-bringer/checkout-service/internal/app/account/queries/list_users"
	accountrepo "github.com/light-bringer/checkout-service/internal/app/account/repo"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/delete_user"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/login"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/register_user"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/update_user"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_open_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/list_carts"
	cartrepo "github.com/light-bringer/checkout-service/internal/app/cart/repo"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/close_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/create_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/delete_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/checkout-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/checkout-service/internal/app/catalog/queries/list_products"
	catalogrepo "github.com/light-bringer/checkout-service/internal/app/catalog/repo"
	"github.com/light-bringer/checkout-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/checkout-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/checkout-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/checkout-service/internal/app/purchase/queries/get_purchase"
	"github.com/light-bringer/checkout-service/internal/app/purchase/queries/list_purchases"
	purchaserepo "github.com/light-bringer/checkout-service/internal/app/purchase/repo"
	"github.com/light-bringer/checkout-service/internal/app/purchase/usecases/create_purchase"
	"github.com/light-bringer/checkout-service/internal/app/purchase/usecases/delete_purchase"
	"github.com/light-bringer/checkout-service/internal/pkg/clock"
	"github.com/light-bringer/checkout-service/internal/pkg/committer"
	"github.com/light-bringer/checkout-service/internal/pkg/token"
	"github.com/light-bringer/checkout-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	RegisterUser   *register_user.Interactor
	Login          *login.Interactor
	UpdateUser     *update_user.Interactor
	DeleteUser     *delete_user.Interactor
	CreateProduct  *create_product.Interactor
	UpdateProduct  *update_product.Interactor
	DeleteProduct  *delete_product.Interactor
	CreateCart     *create_cart.Interactor
	CloseCart      *close_cart.Interactor
	DeleteCart     *delete_cart.Interactor
	AddItem        *add_item.Interactor
	RemoveItem     *remove_item.Interactor
	CreatePurchase *create_purchase.Interactor
	DeletePurchase *delete_purchase.Interactor

	// Queries
	GetUser       *get_user.Query
	ListUsers     *list_users.Query
	GetProduct    *get_product.Query
	ListProducts  *list_products.Query
	GetCart       *get_cart.Query
	GetOpenCart   *get_open_cart.Query
	ListCarts     *list_carts.Query
	GetPurchase   *get_purchase.Query
	ListPurchases *list_purchases.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

func ctx() context.Context {
	return context.Background()
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	tokens := token.NewManager([]byte("e2e-test-secret"), time.Hour, clk)

	userRepo := accountrepo.NewUserRepo()
	productRepo := catalogrepo.NewProductRepo()
	cartRepo := cartrepo.NewCartRepo()
	purchaseRepo := purchaserepo.NewPurchaseRepo()

	userReadModel := accountrepo.NewReadModel(client)
	productReadModel := catalogrepo.NewReadModel(client)
	cartReadModel := cartrepo.NewReadModel(client)
	purchaseReadModel := purchaserepo.NewReadModel(client)

	services := &Services{
		RegisterUser:   register_user.NewInteractor(userRepo, cartRepo, comm, clk),
		Login:          login.NewInteractor(userRepo, comm, tokens),
		UpdateUser:     update_user.NewInteractor(userRepo, comm, clk),
		DeleteUser:     delete_user.NewInteractor(userRepo, cartRepo, purchaseRepo, comm),
		CreateProduct:  create_product.NewInteractor(productRepo, comm, clk),
		UpdateProduct:  update_product.NewInteractor(productRepo, comm, clk),
		DeleteProduct:  delete_product.NewInteractor(productRepo, comm),
		CreateCart:     create_cart.NewInteractor(cartRepo, userRepo, comm, clk),
		CloseCart:      close_cart.NewInteractor(cartRepo, comm, clk),
		DeleteCart:     delete_cart.NewInteractor(cartRepo, purchaseRepo, comm),
		AddItem:        add_item.NewInteractor(cartRepo, productRepo, comm, clk),
		RemoveItem:     remove_item.NewInteractor(cartRepo, comm, clk),
		CreatePurchase: create_purchase.NewInteractor(purchaseRepo, cartRepo, productRepo, comm, clk),
		DeletePurchase: delete_purchase.NewInteractor(purchaseRepo, comm),

		GetUser:       get_user.NewQuery(userReadModel),
		ListUsers:     list_users.NewQuery(userReadModel),
		GetProduct:    get_product.NewQuery(productReadModel),
		ListProducts:  list_products.NewQuery(productReadModel),
		GetCart:       get_cart.NewQuery(cartReadModel),
		GetOpenCart:   get_open_cart.NewQuery(cartReadModel),
		ListCarts:     list_carts.NewQuery(cartReadModel),
		GetPurchase:   get_purchase.NewQuery(purchaseReadModel),
		ListPurchases: list_purchases.NewQuery(purchaseReadModel),

		Clock:  clk,
		Client: client,
	}

	return services, cleanup
}
