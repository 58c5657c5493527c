package emoji

import (
	"unipick/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the emoji catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the emoji routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/emojis")
	group.Get("/", h.HandleList)
}

// HandleList returns the emoji listing, optionally filtered by the group and
// subgroup query parameters.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	listings, err := h.service.List(c.Context(), c.Query("group"), c.Query("subgroup"))
	if err != nil {
		l.Error("Emoji listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(listings)
}
