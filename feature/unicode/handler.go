package unicode

import (
	"unipick/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the character registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the character registry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/characters")
	group.Get("/", h.HandleList)
	group.Get("/:codepoint", h.HandleLookup)
}

// HandleList returns the (code point, name) listing for the whole registry.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	listings, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Character listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(listings)
}

// HandleLookup returns a single character row by code point.
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	codePoint := c.Params("codepoint")
	l := logger.WithRayID(h.service.logger, c)

	row, err := h.service.Lookup(c.Context(), codePoint)
	if err != nil {
		l.Error("Character lookup failed", zap.String("code_point", codePoint), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if row == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "code point not found",
		})
	}

	return c.JSON(row)
}
