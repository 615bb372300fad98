package handlers

import (
	"log"
	"time"

	"github.com/nasarali03/Portfolio/internal/middleware"
	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	auth         *service.AuthService
	secureCookie bool
}

func NewAuthHandler(auth *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")
	authGroup.Post("/login", h.Login)
	authGroup.Post("/logout", h.Logout)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var loginRequest struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	if err := c.Bind().Body(&loginRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if loginRequest.Username == "" || loginRequest.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	token, expiresAt, err := h.auth.Login(c.Context(), loginRequest.Username, loginRequest.Password)
	if err != nil {
		log.Printf("Admin login failed for %s from %s: %v", loginRequest.Username, c.IP(), err)
		return respondError(c, err)
	}

	c.Cookie(h.sessionCookie(token, expiresAt))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"token":     token,
			"expiresAt": expiresAt.Unix(),
		},
	})
}

// Logout revokes the session when the token is still valid and always clears
// the cookie.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if token := middleware.TokenFromRequest(c); token != "" {
		if claims, err := h.auth.ValidateToken(c.Context(), token); err == nil {
			if err := h.auth.Logout(c.Context(), claims); err != nil {
				log.Printf("Failed to revoke admin session %s: %v", claims.ID, err)
			}
		}
	}

	c.Cookie(h.sessionCookie("", time.Unix(0, 0)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     middleware.AdminCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
