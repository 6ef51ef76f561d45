package handlers

import (
	"wardrobe/internal/app"
	eligibilityController "wardrobe/internal/controllers/eligibility"
	"wardrobe/internal/handlers/middleware"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

// EligibilityHandler serves the no-repeat checks. Every route accepts an
// optional ?date=YYYY-MM-DD evaluation date.
type EligibilityHandler struct {
	Handler
	eligibilityController eligibilityController.EligibilityControllerInterface
}

func NewEligibilityHandler(app app.App, router fiber.Router) *EligibilityHandler {
	log := logger.New("handlers").File("eligibility_handler")
	return &EligibilityHandler{
		eligibilityController: app.Controllers.Eligibility,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *EligibilityHandler) Register() {
	eligibility := h.router.Group("/eligibility", h.middleware.RequireAuth())

	eligibility.Post("/check", h.check)
	eligibility.Post("/filter", h.filter)
	eligibility.Post("/rank", h.rank)
	eligibility.Get("/outfits", h.savedOutfits)
}

func (h *EligibilityHandler) check(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("check")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	result, err := h.eligibilityController.Check(c.UserContext(), user, &req, c.Query("date"))
	if err != nil {
		return respondError(c, log, err, "Failed to check eligibility")
	}

	return c.JSON(result)
}

func (h *EligibilityHandler) filter(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("filter")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	result, err := h.eligibilityController.Filter(c.UserContext(), user, &req, c.Query("date"))
	if err != nil {
		return respondError(c, log, err, "Failed to filter candidates")
	}

	return c.JSON(result)
}

func (h *EligibilityHandler) rank(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("rank")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	scored, err := h.eligibilityController.Rank(c.UserContext(), user, &req, c.Query("date"))
	if err != nil {
		return respondError(c, log, err, "Failed to rank candidates")
	}

	return c.JSON(fiber.Map{
		"candidates": scored,
	})
}

func (h *EligibilityHandler) savedOutfits(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("savedOutfits")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	result, err := h.eligibilityController.SavedOutfits(c.UserContext(), user, c.Query("date"))
	if err != nil {
		return respondError(c, log, err, "Failed to filter saved outfits")
	}

	return c.JSON(result)
}
