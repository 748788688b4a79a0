package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/checkout-service/internal/app/catalog/contracts"
	"github.com/light-bringer/checkout-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/checkout-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/checkout-service/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/checkout-service/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/checkout-service/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/checkout-service/internal/pkg/money"
)

// ProductHandler serves catalog management.
type ProductHandler struct {
	create     *create_product.Interactor
	update     *update_product.Interactor
	remove     *delete_product.Interactor
	getProduct *get_product.Query
	list       *list_products.Query
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(
	create *create_product.Interactor,
	update *update_product.Interactor,
	remove *delete_product.Interactor,
	getProduct *get_product.Query,
	list *list_products.Query,
) *ProductHandler {
	return &ProductHandler{
		create:     create,
		update:     update,
		remove:     remove,
		getProduct: getProduct,
		list:       list,
	}
}

// Prices travel as json.Number so "49.99" reaches the money layer as
// the exact decimal string, never as a float64.
type createProductRequest struct {
	Name     string      `json:"name"`
	Color    string      `json:"color"`
	Type     string      `json:"type"`
	Fit      string      `json:"fit"`
	Material string      `json:"material"`
	Size     string      `json:"size"`
	Price    json.Number `json:"price"`
}

type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Type      string    `json:"type"`
	Fit       string    `json:"fit"`
	Material  string    `json:"material"`
	Size      string    `json:"size"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

func toProductResponse(dto *contracts.ProductDTO) productResponse {
	return productResponse{
		ID:        dto.ProductID,
		Name:      dto.Name,
		Color:     dto.Color,
		Type:      dto.Type,
		Fit:       dto.Fit,
		Material:  dto.Material,
		Size:      dto.Size,
		Price:     dto.Price,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// Create adds a product to the catalog.
// POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}

	price, err := money.Parse(req.Price.String())
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := h.create.Execute(r.Context(), &create_product.Request{
		Name:     req.Name,
		Color:    req.Color,
		Type:     req.Type,
		Fit:      req.Fit,
		Material: req.Material,
		Size:     req.Size,
		Price:    price,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createProductResponse{ID: id})
}

// List retrieves a filtered page of products.
// GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	req := &list_products.Request{
		Name:     q.Get("name"),
		Color:    q.Get("color"),
		Type:     q.Get("type"),
		Material: q.Get("material"),
		Fit:      q.Get("fit"),
		Size:     q.Get("size"),
		Offset:   offset,
		Limit:    limit,
	}

	if raw := q.Get("minPrice"); raw != "" {
		req.MinPrice, err = money.Parse(raw)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		req.MaxPrice, err = money.Parse(raw)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	products, err := h.list.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	writeList(w, out)
}

// Get retrieves one product.
// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(dto))
}

type updateProductRequest struct {
	Name     *string      `json:"name"`
	Color    *string      `json:"color"`
	Type     *string      `json:"type"`
	Fit      *string      `json:"fit"`
	Material *string      `json:"material"`
	Size     *string      `json:"size"`
	Price    *json.Number `json:"price"`
}

// Update changes product fields.
// PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}

	ucReq := &update_product.Request{
		ProductID: productID,
		Name:      req.Name,
		Color:     req.Color,
		Type:      req.Type,
		Fit:       req.Fit,
		Material:  req.Material,
		Size:      req.Size,
	}
	if req.Price != nil {
		price, err := money.Parse(req.Price.String())
		if err != nil {
			writeError(w, err)
			return
		}
		ucReq.Price = price
	}

	if err := h.update.Execute(r.Context(), ucReq); err != nil {
		writeError(w, err)
		return
	}

	dto, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: productID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(dto))
}

// Delete removes a product from the catalog.
// DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.remove.Execute(r.Context(), &delete_product.Request{ProductID: chi.URLParam(r, "id")}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
