package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/checkout-service/internal/app/cart/contracts"
	cartdomain "github.com/light-bringer/checkout-service/internal/app/cart/domain"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_open_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/queries/list_carts"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/close_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/create_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/delete_cart"
	"github.com/light-bringer/checkout-service/internal/app/cart/usecases/remove_item"
)

// CartHandler serves the cart engine.
type CartHandler struct {
	create      *create_cart.Interactor
	close       *close_cart.Interactor
	remove      *delete_cart.Interactor
	addItem     *add_item.Interactor
	removeItem  *remove_item.Interactor
	getCart     *get_cart.Query
	getOpenCart *get_open_cart.Query
	list        *list_carts.Query
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(
	create *create_cart.Interactor,
	closeCart *close_cart.Interactor,
	remove *delete_cart.Interactor,
	addItem *add_item.Interactor,
	removeItem *remove_item.Interactor,
	getCart *get_cart.Query,
	getOpenCart *get_open_cart.Query,
	list *list_carts.Query,
) *CartHandler {
	return &CartHandler{
		create:      create,
		close:       closeCart,
		remove:      remove,
		addItem:     addItem,
		removeItem:  removeItem,
		getCart:     getCart,
		getOpenCart: getOpenCart,
		list:        list,
	}
}

type cartItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type cartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	IsOpen    bool               `json:"isOpen"`
	Items     []cartItemResponse `json:"items"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type createCartRequest struct {
	UserID string `json:"userId"`
}

type createCartResponse struct {
	ID string `json:"id"`
}

func toCartResponse(dto *contracts.CartDTO) cartResponse {
	items := make([]cartItemResponse, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, cartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return cartResponse{
		ID:        dto.CartID,
		UserID:    dto.UserID,
		IsOpen:    dto.IsOpen,
		Items:     items,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

func domainCartResponse(cart *cartdomain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items()))
	for _, item := range cart.Items() {
		items = append(items, cartItemResponse{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	return cartResponse{
		ID:        cart.ID(),
		UserID:    cart.UserID(),
		IsOpen:    cart.IsOpen(),
		Items:     items,
		CreatedAt: cart.CreatedAt(),
		UpdatedAt: cart.UpdatedAt(),
	}
}

// Create opens a new cart. The body may name another user; only admins
// may open carts for other users.
// POST /api/carts
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, err := callerFrom(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: "missing bearer token"})
		return
	}

	var req createCartRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
			return
		}
	}

	userID := claims.UserID
	if req.UserID != "" && req.UserID != claims.UserID {
		if !claims.Admin {
			writeJSON(w, http.StatusForbidden, errorBody{Message: "forbidden"})
			return
		}
		userID = req.UserID
	}

	cartID, err := h.create.Execute(r.Context(), &create_cart.Request{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCartResponse{ID: cartID})
}

// List retrieves a page of carts.
// GET /api/carts
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	carts, err := h.list.Execute(r.Context(), &list_carts.Request{Offset: offset, Limit: limit})
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]cartResponse, 0, len(carts))
	for _, c := range carts {
		out = append(out, toCartResponse(c))
	}
	writeList(w, out)
}

// Get retrieves one cart.
// GET /api/carts/{id}
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getCart.Execute(r.Context(), &get_cart.Request{CartID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	if !allowSelfOrAdmin(w, r, dto.UserID) {
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(dto))
}

// GetOpenByUser retrieves the user's open cart.
// GET /api/carts/user/{userId}
func (h *CartHandler) GetOpenByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !allowSelfOrAdmin(w, r, userID) {
		return
	}

	dto, err := h.getOpenCart.Execute(r.Context(), &get_open_cart.Request{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(dto))
}

// Close freezes a cart. Closing an already-closed cart succeeds.
// PUT /api/carts/close/{id}
func (h *CartHandler) Close(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")

	dto, err := h.getCart.Execute(r.Context(), &get_cart.Request{CartID: cartID})
	if err != nil {
		writeError(w, err)
		return
	}
	if !allowSelfOrAdmin(w, r, dto.UserID) {
		return
	}

	if err := h.close.Execute(r.Context(), &close_cart.Request{CartID: cartID}); err != nil {
		writeError(w, err)
		return
	}

	dto, err = h.getCart.Execute(r.Context(), &get_cart.Request{CartID: cartID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(dto))
}

// Delete removes a cart that no purchase references.
// DELETE /api/carts/{id}
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")

	dto, err := h.getCart.Execute(r.Context(), &get_cart.Request{CartID: cartID})
	if err != nil {
		writeError(w, err)
		return
	}
	if !allowSelfOrAdmin(w, r, dto.UserID) {
		return
	}

	if err := h.remove.Execute(r.Context(), &delete_cart.Request{CartID: cartID}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type itemRequest struct {
	CartID    string `json:"cartId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// decodeItemRequest parses and shape-validates an item mutation body,
// then checks the caller owns the addressed cart.
func (h *CartHandler) decodeItemRequest(w http.ResponseWriter, r *http.Request) (*itemRequest, bool) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return nil, false
	}
	if req.CartID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "cartId is required"})
		return nil, false
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "productId is required"})
		return nil, false
	}

	dto, err := h.getCart.Execute(r.Context(), &get_cart.Request{CartID: req.CartID})
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if !allowSelfOrAdmin(w, r, dto.UserID) {
		return nil, false
	}
	return &req, true
}

// AddItem merges quantity into a cart's line for the product.
// PUT /api/carts/product/add
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeItemRequest(w, r)
	if !ok {
		return
	}

	cart, err := h.addItem.Execute(r.Context(), &add_item.Request{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCartResponse(cart))
}

// RemoveItem decrements quantity from a cart's line for the product.
// DELETE /api/carts/product/rmv
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeItemRequest(w, r)
	if !ok {
		return
	}

	cart, err := h.removeItem.Execute(r.Context(), &remove_item.Request{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainCartResponse(cart))
}
