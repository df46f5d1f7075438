package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/auth"
	"kiratakip/internal/common"
	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

// AuthHandlers handles registration, login and session endpoints
type AuthHandlers struct {
	store    storage.Storage
	sessions *auth.SessionManager
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(store storage.Storage, sessions *auth.SessionManager) *AuthHandlers {
	return &AuthHandlers{store: store, sessions: sessions}
}

// RegisterRequest is the signup payload
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles creating a user account and starting a session
func (h *AuthHandlers) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, "Invalid registration data", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register")
	}

	user, err := h.store.CreateUser(models.CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, "Email already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register")
	}

	h.startSession(c, user.ID)
	return c.JSON(http.StatusCreated, user)
}

// Login handles authenticating a user and starting a session
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, "Invalid login data", err)
	}

	user, ok := h.store.GetUserByEmail(req.Email)
	if !ok || !auth.CheckPassword(user.Password, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	h.startSession(c, user.ID)
	return c.JSON(http.StatusOK, user)
}

// Logout handles ending the current session
func (h *AuthHandlers) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.CookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles returning the authenticated user. Requires the session
// middleware.
func (h *AuthHandlers) Me(c echo.Context) error {
	user, ok := c.Get(common.UserContextKey).(models.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandlers) startSession(c echo.Context, userID int) {
	sess := h.sessions.Create(userID)
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
