package middleware

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/gofiber/fiber/v3"
)

const (
	// AdminCookie carries the admin session token set at login.
	AdminCookie = "admin_token"

	claimsKey = "adminClaims"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*service.AdminClaims, error)
}

// AdminRequired rejects requests without a live admin session. The token is
// read from the session cookie first, then from a Bearer header.
func AdminRequired(validator TokenValidator) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := TokenFromRequest(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization token",
			})
		}

		claims, err := validator.ValidateToken(c.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				log.Printf("Token validation failed from %s: %v", c.IP(), err)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

func TokenFromRequest(c fiber.Ctx) string {
	if token := c.Cookies(AdminCookie); token != "" {
		return token
	}
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// Claims returns the admin claims stored by AdminRequired, or nil.
func Claims(c fiber.Ctx) *service.AdminClaims {
	claims, _ := c.Locals(claimsKey).(*service.AdminClaims)
	return claims
}
