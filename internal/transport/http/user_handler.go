package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/checkout-service/internal/app/account/contracts"
	"github.com/light-bringer/checkout-service/internal/app/account/queries/get_user"
	"github.com/light-bringer/checkout-service/internal/app/account/queries/list_users"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/delete_user"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/register_user"
	"github.com/light-bringer/checkout-service/internal/app/account/usecases/update_user"
)

// UserHandler serves account management.
type UserHandler struct {
	register *register_user.Interactor
	update   *update_user.Interactor
	remove   *delete_user.Interactor
	getUser  *get_user.Query
	list     *list_users.Query
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	register *register_user.Interactor,
	update *update_user.Interactor,
	remove *delete_user.Interactor,
	getUser *get_user.Query,
	list *list_users.Query,
) *UserHandler {
	return &UserHandler{
		register: register,
		update:   update,
		remove:   remove,
		getUser:  getUser,
		list:     list,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

type registerResponse struct {
	ID     string `json:"id"`
	CartID string `json:"cartId"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(dto *contracts.UserDTO) userResponse {
	return userResponse{
		ID:        dto.UserID,
		Name:      dto.Name,
		Email:     dto.Email,
		Admin:     dto.Admin,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}

// Register creates a user and their first cart.
// POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}

	// Only an authenticated admin may create another admin.
	admin := false
	if req.Admin {
		claims, err := callerFrom(r.Context())
		if err != nil || !claims.Admin {
			writeJSON(w, http.StatusForbidden, errorBody{Message: "admin access required to create admin accounts"})
			return
		}
		admin = true
	}

	result, err := h.register.Execute(r.Context(), &register_user.Request{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Admin:    admin,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{ID: result.UserID, CartID: result.CartID})
}

// List retrieves a page of users.
// GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := pagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := h.list.Execute(r.Context(), &list_users.Request{Offset: offset, Limit: limit})
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeList(w, out)
}

// Get retrieves one user.
// GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if !allowSelfOrAdmin(w, r, userID) {
		return
	}

	dto, err := h.getUser.Execute(r.Context(), &get_user.Request{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(dto))
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Admin    *bool   `json:"admin"`
}

// Update changes user fields.
// PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if !allowSelfOrAdmin(w, r, userID) {
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}

	if req.Admin != nil {
		claims, err := callerFrom(r.Context())
		if err != nil || !claims.Admin {
			writeJSON(w, http.StatusForbidden, errorBody{Message: "admin access required to change the admin flag"})
			return
		}
	}

	err := h.update.Execute(r.Context(), &update_user.Request{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Admin:    req.Admin,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	dto, err := h.getUser.Execute(r.Context(), &get_user.Request{UserID: userID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(dto))
}

// Delete erases a user, their carts and purchase records.
// DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if !allowSelfOrAdmin(w, r, userID) {
		return
	}

	if err := h.remove.Execute(r.Context(), &delete_user.Request{UserID: userID}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
