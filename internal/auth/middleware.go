package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/manfred-witteman/flea/internal/config"
)

const (
	CtxUserIDKey  = "user_id"
	CtxIsAdminKey = "is_admin"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Niet ingelogd")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization moet 'Bearer <token>' zijn")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("ongeldige ondertekeningsmethode")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Ongeldig of verlopen token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token kon niet worden gelezen")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxIsAdminKey, claims.IsAdmin)

		return c.Next()
	}
}

// RequireAdmin: alleen beheerders mogen verrekenen en logs inzien. De check
// gebeurt vóór enige databaseactie, zodat een geweigerd verzoek nooit een
// transactie opent.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals(CtxIsAdminKey).(bool)
		if !ok || !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Niet gemachtigd")
		}
		return c.Next()
	}
}

// CurrentUserID haalt de ingelogde gebruiker uit de request-context.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok {
		return 0, fiber.NewError(fiber.StatusForbidden, "Gebruikersinfo niet beschikbaar")
	}
	return userID, nil
}
