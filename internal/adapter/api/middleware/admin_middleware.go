package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ruya/internal/usecase"
)

// AdminAuthCookie carries the admin session token for browser clients that
// do not set an Authorization header.
const AdminAuthCookie = "admin_session"

type AdminMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAdminMiddleware(authUseCase *usecase.AuthUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		authUseCase: authUseCase,
	}
}

// RequireAdmin accepts the session token from either a Bearer header or the
// admin session cookie.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(AdminAuthCookie); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Admin authentication required")
		}

		if err := m.authUseCase.VerifyToken(token); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
