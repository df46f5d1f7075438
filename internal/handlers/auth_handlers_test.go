package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiratakip/internal/auth"
	"kiratakip/internal/models"
	"kiratakip/internal/storage"
)

func modelsUser(email string) models.CreateUserParams {
	return models.CreateUserParams{Name: "Admin", Email: email, Password: "hash"}
}

func TestRegisterAndLogin(t *testing.T) {
	store := storage.NewMemStorage()
	sessions := auth.NewSessionManager(time.Hour)
	h := NewAuthHandlers(store, sessions)

	body := `{"name":"Admin","email":"admin@example.com","password":"gizli-sifre"}`
	c, rec := newTestContext(http.MethodPost, "/api/auth/register", body)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "register must start a session")
	assert.NotContains(t, rec.Body.String(), "gizli-sifre", "password hash must not leak")

	// Duplicate email
	c, _ = newTestContext(http.MethodPost, "/api/auth/register", body)
	err := h.Register(c)
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))

	// Login with the right password
	c, rec = newTestContext(http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"gizli-sifre"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))

	// Wrong password
	c, _ = newTestContext(http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"yanlis"}`)
	err = h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, httpErrorCode(t, err))

	// Unknown user gets the same answer as a wrong password
	c, _ = newTestContext(http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"gizli-sifre"}`)
	err = h.Login(c)
	assert.Equal(t, http.StatusUnauthorized, httpErrorCode(t, err))
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandlers(storage.NewMemStorage(), auth.NewSessionManager(time.Hour))

	c, rec := newTestContext(http.MethodPost, "/api/auth/register", `{"name":"X","email":"not-an-email","password":"123"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid registration data", resp["message"])
}

func TestLogoutClearsSession(t *testing.T) {
	store := storage.NewMemStorage()
	sessions := auth.NewSessionManager(time.Hour)
	h := NewAuthHandlers(store, sessions)

	user, err := store.CreateUser(modelsUser("admin@example.com"))
	require.NoError(t, err)
	sess := sessions.Create(user.ID)

	c, rec := newTestContext(http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: auth.CookieName, Value: sess.Token})
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, ok := sessions.Get(sess.Token)
	assert.False(t, ok, "session must be revoked")
}
