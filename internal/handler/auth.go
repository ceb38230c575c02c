package handler

import (
	"context"
	"net/http"

	"github.com/ffc/club/api/internal/middleware"
	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/internal/service"
)

// AuthHandler handles login, logout, and session introspection
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string              `json:"token"`
	User  *model.UserDocument `json:"user"`
}

// LoginPlayer handles POST /v1/auth/login/player
func (h *AuthHandler) LoginPlayer(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authService.LoginPlayer)
}

// LoginAdmin handles POST /v1/auth/login/admin
func (h *AuthHandler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.authService.LoginAdmin)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, email, password string) (*service.LoginResult, error)) {
	var req loginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := fn(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

// Logout handles POST /v1/auth/logout. Tokens are stateless, so logout
// is the client discarding its token; the endpoint exists for symmetry
// and future revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	WriteNoContent(w)
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil || session.User == nil {
		WriteError(w, model.NewUnauthorizedError("not authenticated"))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":    session.User,
		"isAdmin": session.IsAdmin,
	})
}
