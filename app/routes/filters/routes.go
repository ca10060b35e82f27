package filters

import (
	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/services"
)

// Handler exposes the per-view filter registry so the UI can keep its last
// filter selections across page visits.
type Handler struct {
	Registry *services.FilterRegistry
}

func SetupFilterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/filters")

	api.Get("/:view", h.GetFiltersAPI)
	api.Post("/:view", h.SetFiltersAPI)
	api.Delete("/:view", h.ResetFiltersAPI)
}

func (h *Handler) GetFiltersAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"view":    c.Params("view"),
		"filters": h.Registry.Get(c.Params("view")),
	})
}

func (h *Handler) SetFiltersAPI(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	view := c.Params("view")
	for key, value := range values {
		h.Registry.Set(view, key, value)
	}
	return c.JSON(fiber.Map{
		"view":    view,
		"filters": h.Registry.Get(view),
	})
}

func (h *Handler) ResetFiltersAPI(c *fiber.Ctx) error {
	h.Registry.Reset(c.Params("view"))
	return c.JSON(fiber.Map{"message": "Filters reset"})
}
