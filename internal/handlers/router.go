package handlers

import (
	"errors"
	"wardrobe/internal/app"
	"wardrobe/internal/handlers/middleware"
	"wardrobe/internal/services"
	"wardrobe/internal/validation"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewPreferenceHandler(*app, api).Register()
	NewWearHandler(*app, api).Register()
	NewWardrobeHandler(*app, api).Register()
	NewEligibilityHandler(*app, api).Register()

	return nil
}

// respondError maps service errors onto status codes. Anything unrecognised is
// logged and reported as message with a 500.
func respondError(c *fiber.Ctx, log logger.Logger, err error, message string) error {
	var fieldsErr *validation.FieldsError
	switch {
	case errors.As(err, &fieldsErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fieldsErr.Fields,
		})
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidConfiguration):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidReference):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	_ = log.Err(message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}

func invalidBody(c *fiber.Ctx, log logger.Logger, err error) error {
	log.Warn("Invalid request body", "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}

func unauthorized(c *fiber.Ctx, log logger.Logger) error {
	log.Warn("Unauthorized access attempt")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Authentication required",
	})
}
