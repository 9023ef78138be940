package curated

import (
	"bytes"

	"championship-pipeline/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for curated tables.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the curated routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/dim-club", h.HandleDimClub)
	app.Get("/coverage", h.HandleCoverage)
	group := app.Group("/curated")
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGet)
}

// HandleDimClub returns the authoritative dim_club table as JSON rows.
func (h *Handler) HandleDimClub(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"clubs": Records(h.service.DimTable()),
	})
}

// HandleCoverage reports per-club source coverage from the curated tables.
func (h *Handler) HandleCoverage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.log, c)

	results, summary, err := h.service.Coverage(c.Context())
	if err != nil {
		l.Error("coverage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"summary": summary,
		"clubs":   results,
	})
}

// HandleList returns the object names of all curated tables.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.log, c)

	names, err := h.service.List(c.Context())
	if err != nil {
		l.Error("listing curated tables failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"objects": names})
}

// HandleGet streams one curated table as CSV.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.log, c)

	t, err := h.service.Get(c.Context(), name)
	if err != nil {
		l.Error("loading curated table failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		l.Error("encoding curated table failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}
