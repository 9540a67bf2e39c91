package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ruya/internal/adapter/api/middleware"
	"ruya/internal/usecase"
	"ruya/pkg/errors"
	"ruya/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Login exchanges the admin password for a session token. The token is also
// set as a cookie so browser-based admin pages work without extra plumbing.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.Login(req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminAuthCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.authUseCase.TokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, map[string]string{
		"token": token,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminAuthCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, map[string]string{
		"message": "Logged out",
	})
}
