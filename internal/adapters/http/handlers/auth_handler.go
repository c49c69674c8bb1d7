package handlers

import (
	"net/http"
	"strings"

	"github.com/planmate/planmate/internal/adapters/http/dto"
	"github.com/planmate/planmate/internal/ports"
)

// AuthHandler handles account registration and session management.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(created))
}

// Login handles POST /api/v1/auth/login. A successful login opens a session
// and returns its bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}

// Logout handles POST /api/v1/auth/logout. The session to close is the one
// named by the request's bearer token; logging out without one is a no-op.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		h.svc.Logout(r.Context(), strings.TrimSpace(auth[len(prefix):]))
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me, returning the acting user for the
// request's session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.CurrentUser(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}
