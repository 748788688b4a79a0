package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/spanner"

	accountqueries_get "github.com/light-bringer/checkout-service/internal/app/account/queries/get_user"
	accountqueries_list "github.com/light-bringer/checkout-service/internal/app/account/queries/list_users"
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
	transport "github.com/light-bringer/checkout-service/internal/transport/http"
)

// Config holds the runtime configuration of the service.
type Config struct {
	SpannerDB string
	JWTSecret []byte
	TokenTTL  time.Duration
	Logger    *slog.Logger
}

// ServiceOptions holds all wired application dependencies.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Router        http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *Config) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// Infrastructure
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL, clk)

	// Repositories and read models
	userRepo := accountrepo.NewUserRepo()
	productRepo := catalogrepo.NewProductRepo()
	cartRepo := cartrepo.NewCartRepo()
	purchaseRepo := purchaserepo.NewPurchaseRepo()

	userReadModel := accountrepo.NewReadModel(spannerClient)
	productReadModel := catalogrepo.NewReadModel(spannerClient)
	cartReadModel := cartrepo.NewReadModel(spannerClient)
	purchaseReadModel := purchaserepo.NewReadModel(spannerClient)

	// Command use cases
	registerUser := register_user.NewInteractor(userRepo, cartRepo, comm, clk)
	loginUser := login.NewInteractor(userRepo, comm, tokens)
	updateUser := update_user.NewInteractor(userRepo, comm, clk)
	deleteUser := delete_user.NewInteractor(userRepo, cartRepo, purchaseRepo, comm)

	createProduct := create_product.NewInteractor(productRepo, comm, clk)
	updateProduct := update_product.NewInteractor(productRepo, comm, clk)
	deleteProduct := delete_product.NewInteractor(productRepo, comm)

	createCart := create_cart.NewInteractor(cartRepo, userRepo, comm, clk)
	closeCart := close_cart.NewInteractor(cartRepo, comm, clk)
	deleteCart := delete_cart.NewInteractor(cartRepo, purchaseRepo, comm)
	addItem := add_item.NewInteractor(cartRepo, productRepo, comm, clk)
	removeItem := remove_item.NewInteractor(cartRepo, comm, clk)

	createPurchase := create_purchase.NewInteractor(purchaseRepo, cartRepo, productRepo, comm, clk)
	deletePurchase := delete_purchase.NewInteractor(purchaseRepo, comm)

	// Query use cases
	getUserQuery := accountqueries_get.NewQuery(userReadModel)
	listUsersQuery := accountqueries_list.NewQuery(userReadModel)
	getProductQuery := get_product.NewQuery(productReadModel)
	listProductsQuery := list_products.NewQuery(productReadModel)
	getCartQuery := get_cart.NewQuery(cartReadModel)
	getOpenCartQuery := get_open_cart.NewQuery(cartReadModel)
	listCartsQuery := list_carts.NewQuery(cartReadModel)
	getPurchaseQuery := get_purchase.NewQuery(purchaseReadModel)
	listPurchasesQuery := list_purchases.NewQuery(purchaseReadModel)

	// HTTP boundary
	router := transport.NewRouter(&transport.RouterDeps{
		Logger: cfg.Logger,
		Tokens: tokens,
		Auth:   transport.NewAuthHandler(loginUser),
		Users: transport.NewUserHandler(
			registerUser, updateUser, deleteUser, getUserQuery, listUsersQuery,
		),
		Products: transport.NewProductHandler(
			createProduct, updateProduct, deleteProduct, getProductQuery, listProductsQuery,
		),
		Carts: transport.NewCartHandler(
			createCart, closeCart, deleteCart, addItem, removeItem,
			getCartQuery, getOpenCartQuery, listCartsQuery,
		),
		Purchases: transport.NewPurchaseHandler(
			createPurchase, deletePurchase, getPurchaseQuery, listPurchasesQuery, getCartQuery,
		),
	})

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Router:        router,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
