package handlers

import (
	"errors"
	"log"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/gofiber/fiber/v3"
)

// respondError maps domain errors onto HTTP statuses.
func respondError(c fiber.Ctx, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, models.ErrStoreUnavailable):
		log.Printf("Store unavailable on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Content store is unavailable",
		})
	case errors.Is(err, service.ErrResumeStorageOff), errors.Is(err, service.ErrSummaryOff):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrSummaryFailed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate summary",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	default:
		log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
