package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// principalKey is where Auth stores the verified email on the echo context.
const principalKey = "principal_email"

// Auth verifies the bearer credential issued by the identity provider
// (HMAC-signed JWT over a shared secret) and stores the verified email on
// the context. Fails closed: missing/invalid/expired tokens get a 401.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == header {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization must be a Bearer token"})
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
			}
			email, _ := claims["email"].(string)
			if email == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token carries no email claim"})
			}

			c.Set(principalKey, email)
			return next(c)
		}
	}
}

// PrincipalEmail returns the verified email set by Auth, or "" when the
// request was not authenticated.
func PrincipalEmail(c echo.Context) string {
	email, _ := c.Get(principalKey).(string)
	return email
}
