package handler

import (
	"net/http"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	session, err := h.authService.Register(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "register"))
		return
	}

	WriteData(w, http.StatusCreated, session, map[string]string{
		"profile": "/v1/profile",
		"wizard":  "/v1/wizard",
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	session, err := h.authService.Login(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "login"))
		return
	}

	WriteData(w, http.StatusOK, session, map[string]string{
		"profile": "/v1/profile",
	})
}

// Guest handles POST /v1/sessions/guest. Guest sessions let visitors run the
// skin analysis and browse matched products without creating an account.
func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.GuestSession(r.Context())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "guest session"))
		return
	}

	WriteData(w, http.StatusCreated, session, map[string]string{
		"wizard": "/v1/wizard",
	})
}
