package usecase

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ruya/pkg/errors"
)

// AuthUseCase issues and verifies the admin session tokens that protect the
// hidden admin surface. It replaces the storefront's previous shared-secret
// cookie with expiring signed tokens.
type AuthUseCase struct {
	adminPassword string
	jwtSecret     []byte
	tokenDuration time.Duration
}

func NewAuthUseCase(adminPassword, jwtSecret string, expirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		adminPassword: adminPassword,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: time.Duration(expirySeconds) * time.Second,
	}
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the admin password and returns a signed session token.
func (uc *AuthUseCase) Login(password string) (string, error) {
	if uc.adminPassword == "" {
		return "", errors.Internal("Admin login is not configured", nil)
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(uc.adminPassword)) != 1 {
		return "", errors.Unauthorized("Invalid password", nil)
	}

	now := time.Now()
	claims := adminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "ruya",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", errors.Internal("Failed to sign session token", err)
	}
	return signed, nil
}

// VerifyToken checks a session token and confirms it carries the admin role.
func (uc *AuthUseCase) VerifyToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected signing method", nil)
		}
		return uc.jwtSecret, nil
	})
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return errors.Unauthorized("Invalid or expired token", nil)
	}
	return nil
}

// TokenDuration exposes the configured session length for cookie max-age.
func (uc *AuthUseCase) TokenDuration() time.Duration {
	return uc.tokenDuration
}
