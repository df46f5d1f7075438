package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/auth"
	"kiratakip/internal/common"
	"kiratakip/internal/storage"
)

// RequireSession gates a route behind the session cookie. The authenticated
// user is stored on the echo context under common.UserContextKey.
func RequireSession(sessions *auth.SessionManager, store storage.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			sess, ok := sessions.Get(cookie.Value)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			user, ok := store.GetUser(sess.UserID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			c.Set(common.UserContextKey, user)
			return next(c)
		}
	}
}
