// Package auth implements single-admin session authentication.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/imagedrop/service/internal/config"
	"github.com/imagedrop/service/internal/middleware"
	"github.com/imagedrop/service/internal/response"
)

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc *Service
	cfg *config.Config
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"    example:"admin@example.com"`
	Password string `json:"password" example:"hunter2"`
}

type messageBody struct {
	Message string `json:"message" example:"Login successful"`
}

type meBody struct {
	Success bool     `json:"success" example:"true"`
	User    userBody `json:"user"`
}

type userBody struct {
	Email string `json:"email" example:"admin@example.com"`
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Validate the admin credential pair and set the session cookie (HttpOnly, SameSite=Strict, 6h lifetime).
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	messageBody
//	@Failure		400		{object}	messageBody
//	@Failure		401		{object}	messageBody
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "Email and password are required")
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		response.Unauthorized(w, "Invalid credentials")
		return
	}
	if err != nil {
		response.InternalError(w, "Login failed")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(SessionTTL.Seconds())))

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    userBody{Email: h.cfg.AdminEmail},
	})
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Clear the session cookie. Always succeeds, even without an active session.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	messageBody
//	@Router			/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	response.Message(w, http.StatusOK, "Logout successful")
}

// Me godoc
//
//	@Summary		Current session
//	@Description	Return the identity of the authenticated admin.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	meBody
//	@Failure		401	{object}	messageBody
//	@Router			/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := r.Context().Value(middleware.AdminEmailKey).(string)
	if !ok || email == "" {
		response.Unauthorized(w, "Authentication required")
		return
	}

	response.JSON(w, http.StatusOK, meBody{
		Success: true,
		User:    userBody{Email: email},
	})
}

// sessionCookie builds the auth cookie. maxAge -1 clears it.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
}
