package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartSessionCookie identifies one browsing session's cart.
const CartSessionCookie = "cart_session"

// SessionContextKey is where the session id is stored on the echo context.
const SessionContextKey = "session_id"

// CartSession issues a session cookie on first contact and rejects anything
// that is not a UUID we minted, since the id becomes part of a file path.
func CartSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sessionID string

		if cookie, err := c.Cookie(CartSessionCookie); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     CartSessionCookie,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   60 * 60 * 24 * 30, // 30 days
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(SessionContextKey, sessionID)
		return next(c)
	}
}
