package handlers

import (
	"wardrobe/internal/app"
	wardrobeController "wardrobe/internal/controllers/wardrobe"
	"wardrobe/internal/handlers/middleware"
	"wardrobe/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type WardrobeHandler struct {
	Handler
	wardrobeController wardrobeController.WardrobeControllerInterface
}

func NewWardrobeHandler(app app.App, router fiber.Router) *WardrobeHandler {
	log := logger.New("handlers").File("wardrobe_handler")
	return &WardrobeHandler{
		wardrobeController: app.Controllers.Wardrobe,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *WardrobeHandler) Register() {
	items := h.router.Group("/items", h.middleware.RequireAuth())
	items.Post("", h.createItem)

	outfits := h.router.Group("/outfits", h.middleware.RequireAuth())
	outfits.Post("", h.createOutfit)
	outfits.Get("", h.listOutfits)
}

func (h *WardrobeHandler) createItem(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("createItem")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	item, err := h.wardrobeController.CreateItem(c.UserContext(), user, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to create item")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item": item,
	})
}

func (h *WardrobeHandler) createOutfit(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("createOutfit")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	var req services.CreateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c, log, err)
	}

	outfit, err := h.wardrobeController.CreateOutfit(c.UserContext(), user, &req)
	if err != nil {
		return respondError(c, log, err, "Failed to create outfit")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"outfit": outfit,
	})
}

func (h *WardrobeHandler) listOutfits(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("listOutfits")

	user := middleware.GetUser(c)
	if user == nil {
		return unauthorized(c, log)
	}

	outfits, err := h.wardrobeController.ListOutfits(c.UserContext(), user)
	if err != nil {
		return respondError(c, log, err, "Failed to retrieve outfits")
	}

	return c.JSON(fiber.Map{
		"outfits": outfits,
	})
}
