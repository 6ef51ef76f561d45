package handlers

import (
	"wardrobe/internal/app"
	preferenceController "wardrobe/internal/controllers/preferences"
	"wardrobe/internal/handlers/middleware"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type PreferenceHandler struct {
	Handler
	preferenceController preferenceController.PreferenceControllerInterface
}

func NewPreferenceHandler(app app.App, router fiber.Router) *PreferenceHandler {
	log := logger.New("handlers").File("preference_handler")
	return &PreferenceHandler{
		preferenceController: app.Controllers.Preference,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PreferenceHandler) Register() {
	noRepeat := h.router.Group("/preferences/no-repeat", h.middleware.RequireAuth())

	noRepeat.Get("", h.getNoRepeat)
	noRepeat.Put("", h.updateNoRepeat)
	noRepeat.Post("/defaults", h.ensureDefaults)
}

func (h *PreferenceHandler) getNoRepeat(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("getNoRepeat")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	policy, err := h.preferenceController.GetNoRepeat(c.UserContext(), user)
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve no-repeat preference")
	}

	return c.JSON(fiber.Map{
		"policy": policy,
	})
}

func (h *PreferenceHandler) updateNoRepeat(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("updateNoRepeat")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.UpdatePreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	policy, err := h.preferenceController.UpdateNoRepeat(c.UserContext(), user, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to update no-repeat preference")
	}

	return c.JSON(fiber.Map{
		"policy": policy,
	})
}

func (h *PreferenceHandler) ensureDefaults(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("ensureDefaults")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	policy, err := h.preferenceController.EnsureDefaults(c.UserContext(), user)
	if err != nil {
		return respondError(c, log, err, "Failed to create default preference")
	}

	return c.JSON(fiber.Map{
		"policy": policy,
	})
}
