package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/checkout-service/internal/pkg/token"
)

// RouterDeps collects everything the router needs.
type RouterDeps struct {
	Logger *slog.Logger
	Tokens *token.Manager

	Auth      *AuthHandler
	Users     *UserHandler
	Products  *ProductHandler
	Carts     *CartHandler
	Purchases *PurchaseHandler
}

// NewRouter wires all routes under /api.
//
// Middleware order: Recovery -> Logging, then per-group Authenticate.
// Login, registration and catalog reads are public; registration gets
// MaybeAuthenticate so an admin token can mint admin accounts.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(Recovery(deps.Logger))
	r.Use(Logging(deps.Logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", deps.Auth.Login)

		r.Route("/users", func(r chi.Router) {
			r.With(MaybeAuthenticate(deps.Tokens)).Post("/", deps.Users.Register)

			r.Group(func(r chi.Router) {
				r.Use(Authenticate(deps.Tokens))
				r.With(RequireAdmin).Get("/", deps.Users.List)
				r.Get("/{id}", deps.Users.Get)
				r.Put("/{id}", deps.Users.Update)
				r.Delete("/{id}", deps.Users.Delete)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Products.List)
			r.Get("/{id}", deps.Products.Get)

			r.Group(func(r chi.Router) {
				r.Use(Authenticate(deps.Tokens), RequireAdmin)
				r.Post("/", deps.Products.Create)
				r.Put("/{id}", deps.Products.Update)
				r.Delete("/{id}", deps.Products.Delete)
			})
		})

		r.Route("/carts", func(r chi.Router) {
			r.Use(Authenticate(deps.Tokens))
			r.With(RequireAdmin).Get("/", deps.Carts.List)
			r.Post("/", deps.Carts.Create)
			r.Put("/product/add", deps.Carts.AddItem)
			r.Delete("/product/rmv", deps.Carts.RemoveItem)
			r.Get("/user/{userId}", deps.Carts.GetOpenByUser)
			r.Put("/close/{id}", deps.Carts.Close)
			r.Get("/{id}", deps.Carts.Get)
			r.Delete("/{id}", deps.Carts.Delete)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Use(Authenticate(deps.Tokens))
			r.With(RequireAdmin).Get("/", deps.Purchases.List)
			r.Post("/", deps.Purchases.Create)
			r.Get("/user/{userId}", deps.Purchases.ListByUser)
			r.Get("/{id}", deps.Purchases.Get)
			r.Delete("/{id}", deps.Purchases.Delete)
		})
	})

	return r
}
