package http

import (
	"encoding/json"
	"net/http"

	"github.com/light-bringer/checkout-service/internal/app/account/usecases/login"
)

// AuthHandler serves credential verification.
type AuthHandler struct {
	login *login.Interactor
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(loginInteractor *login.Interactor) *AuthHandler {
	return &AuthHandler{login: loginInteractor}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and issues a token.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "email and password are required"})
		return
	}

	result, err := h.login.Execute(r.Context(), &login.Request{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: result.Token})
}
