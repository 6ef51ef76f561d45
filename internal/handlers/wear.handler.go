package handlers

import (
	"wardrobe/internal/app"
	wearController "wardrobe/internal/controllers/wear"
	"wardrobe/internal/handlers/middleware"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WearHandler struct {
	Handler
	wearController wearController.WearControllerInterface
}

func NewWearHandler(app app.App, router fiber.Router) *WearHandler {
	log := logger.New("handlers").File("wear_handler")
	return &WearHandler{
		wearController: app.Controllers.Wear,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *WearHandler) Register() {
	wear := h.router.Group("/wear-events", h.middleware.RequireAuth())

	wear.Post("", h.logWear)
	wear.Post("/batch", h.logWearBatch)
	wear.Get("", h.listWear)
	wear.Delete("/:id", h.retractWear)
}

func (h *WearHandler) logWear(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("logWear")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.LogWearRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	event, err := h.wearController.LogWear(c.UserContext(), user, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to log wear")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"event": event,
	})
}

func (h *WearHandler) logWearBatch(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("logWearBatch")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.LogWearBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	events, err := h.wearController.LogWearBatch(c.UserContext(), user, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to log wear batch")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"events": events,
	})
}

func (h *WearHandler) listWear(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listWear")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	events, err := h.wearController.ListWear(c.UserContext(), user, c.Query("since"), c.Query("until"))
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve wear history")
	}

	return c.JSON(fiber.Map{
		"events": events,
	})
}

func (h *WearHandler) retractWear(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("retractWear")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	eventIDParam := c.Params("id")
	eventID, err := uuid.Parse(eventIDParam)
	if err != nil {
		log.Warn("Invalid wear event ID", "id", eventIDParam)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid wear event ID",
		})
	}

	if err := h.wearController.RetractWear(c.UserContext(), user, eventID); err != nil {
		return respondError(c, log, err, "Failed to retract wear")
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}
