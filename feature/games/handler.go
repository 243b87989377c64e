package games

import (
	"eshop-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the game catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/games", h.HandleListGames)
	group.Get("/status", h.HandleStatus)
}

// HandleListGames returns one page of the merged catalog.
// @Summary List Games
// @Description List the merged catalog with optional title filter, sorting and pagination.
// @Tags games
// @Produce json
// @Param filter query string false "Case-insensitive title substring"
// @Param sort query string false "Sort field (code, id, title, art, release_date, a_nsuid, e_nsuid)" default(title)
// @Param order query string false "Sort order" Enums(asc, desc) default(asc)
// @Param limit query int false "Page size (max 50)" default(10)
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} games.Page "Catalog page"
// @Router /api/games/ [get]
func (h *Handler) HandleListGames(c *fiber.Ctx) error {
	q := NewQuery(
		c.Query("filter"),
		c.Query("sort", DefaultSort),
		c.Query("order"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", DefaultLimit),
	)

	page := h.service.List(q)
	logger.WithRayID(h.service.logger, c).Debug("Listed games",
		zap.String("filter", q.Filter),
		zap.String("sort", q.Sort),
		zap.String("order", q.Order.String()),
		zap.Int("offset", q.Offset),
		zap.Int("count", page.Count))

	return c.JSON(page)
}

// HandleStatus reports catalog readiness.
// @Summary Catalog Status
// @Description Reports whether the initial catalog load has completed, and a summary of its contents.
// @Tags games
// @Produce json
// @Success 200 {object} games.Status "Catalog status"
// @Router /api/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}
