package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/checkout-service/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/checkout-service/internal/app/purchase/contracts"
	"github.com/light-bringer/checkout-service/internal/app/purchase/queries/get_purchase"
	"github.com/light-bringer/checkout-service/internal/app/purchase/queries/list_purchases"
	"github.com/light-bringer/checkout-service/internal/app/purchase/usecases/create_purchase"
	"github.com/light-bringer/checkout-service/internal/app/purchase/usecases/delete_purchase"
)

// PurchaseHandler serves checkout and order history.
type PurchaseHandler struct {
	create      *create_purchase.Interactor
	remove      *delete_purchase.Interactor
	getPurchase *get_purchase.Query
	list        *list_purchases.Query
	getCart     *get_cart.Query
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(
	create *create_purchase.Interactor,
	remove *delete_purchase.Interactor,
	getPurchase *get_purchase.Query,
	list *list_purchases.Query,
	getCart *get_cart.Query,
) *PurchaseHandler {
	return &PurchaseHandler{
		create:      create,
		remove:      remove,
		getPurchase: getPurchase,
		list:        list,
		getCart:     getCart,
	}
}

type createPurchaseRequest struct {
	CartID        string `json:"cartId"`
	PaymentMethod string `json:"paymentMethod"`
}

type createPurchaseResponse struct {
	ID     string `json:"id"`
	CartID string `json:"cartId"` // replacement cart for the owner
	Total  string `json:"total"`
}

type purchaseResponse struct {
	ID            string    `json:"id"`
	CartID        string    `json:"cartId"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toPurchaseResponse(dto *contracts.PurchaseDTO) purchaseResponse {
	return purchaseResponse{
		ID:            dto.PurchaseID,
		CartID:        dto.CartID,
		Total:         dto.Total,
		PaymentMethod: dto.PaymentMethod,
		CreatedAt:     dto.CreatedAt,
	}
}

// ownsPurchaseCart resolves the purchase's source cart and checks the
// caller may act on it.
func (h *PurchaseHandler) ownsPurchaseCart(w http.ResponseWriter, r *http.Request, cartID string) bool {
	dto, err := h.getCart.Execute(r.Context(), &get_cart.Request{CartID: cartID})
	if err != nil {
		writeError(w, err)
		return false
	}
	return allowSelfOrAdmin(w, r, dto.UserID)
}

// Create finalizes a cart into a purchase.
// POST /api/purchases
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if req.CartID == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "cartId is required"})
		return
	}

	if !h.ownsPurchaseCart(w, r, req.CartID) {
		return
	}

	result, err := h.create.Execute(r.Context(), &create_purchase.Request{
		CartID:        req.CartID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPurchaseResponse{
		ID:     result.PurchaseID,
		CartID: result.CartID,
		Total:  result.Total.String(),
	})
}

// List retrieves a page of all purchases.
// GET /api/purchases
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	purchases, err := h.list.Execute(r.Context(), &list_purchases.Request{Offset: offset, Limit: limit})
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]purchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	writeList(w, out)
}

// Get retrieves one purchase.
// GET /api/purchases/{id}
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getPurchase.Execute(r.Context(), &get_purchase.Request{PurchaseID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	if !h.ownsPurchaseCart(w, r, dto.CartID) {
		return
	}
	writeJSON(w, http.StatusOK, toPurchaseResponse(dto))
}

// ListByUser retrieves the purchases against a user's carts.
// GET /api/purchases/user/{userId}
func (h *PurchaseHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if !allowSelfOrAdmin(w, r, userID) {
		return
	}

	offset, limit, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	purchases, err := h.list.Execute(r.Context(), &list_purchases.Request{
		UserID: userID,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]purchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	writeList(w, out)
}

// Delete removes a purchase record. The source cart stays closed.
// DELETE /api/purchases/{id}
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	purchaseID := chi.URLParam(r, "id")

	dto, err := h.getPurchase.Execute(r.Context(), &get_purchase.Request{PurchaseID: purchaseID})
	if err != nil {
		writeError(w, err)
		return
	}
	if !h.ownsPurchaseCart(w, r, dto.CartID) {
		return
	}

	if err := h.remove.Execute(r.Context(), &delete_purchase.Request{PurchaseID: purchaseID}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
