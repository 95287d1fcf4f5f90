// Package auth implements operator authentication: Google OAuth login for
// allow-listed operator emails, exchanged for an HMAC-signed JWT carried in
// an HttpOnly cookie.
package auth

import (
	"fmt"
	"time"

	"sectors-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims issued to an authenticated operator.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// RoleAdmin marks operators allowed to hit admin endpoints.
const RoleAdmin = "admin"

// GenerateJWT signs a token for an operator.
func GenerateJWT(email, name, role string) (string, error) {
	cfg := config.GlobalConfig.Auth

	claims := Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateJWT parses and verifies a token produced by GenerateJWT.
func ValidateJWT(tokenString string) (*Claims, error) {
	cfg := config.GlobalConfig.Auth

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// IsAdminEmail reports whether an email is on the operator allow-list.
func IsAdminEmail(email string) bool {
	for _, allowed := range config.GlobalConfig.Auth.AdminEmails {
		if allowed == email {
			return true
		}
	}
	return false
}
