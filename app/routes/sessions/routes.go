package sessions

import (
	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/services"
)

// Handler carries the session endpoints' dependencies; main wires one up.
type Handler struct {
	Loader      *services.Loader
	Editor      *services.Editor
	DefaultYear string
}

func SetupSessionRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/sessions")

	api.Get("/", h.ListSessionsAPI)
	api.Post("/", h.CreateSessionAPI)
	api.Post("/check-conflicts", h.CheckConflictsAPI)
	api.Get("/day/:day", h.ListByDayAPI)
	api.Get("/room/:roomId", h.ListByRoomAPI)
	api.Get("/:id", h.GetSessionAPI)
	api.Put("/:id", h.UpdateSessionAPI)
	api.Delete("/:id/hard", h.HardDeleteSessionAPI)
	api.Delete("/:id", h.DeleteSessionAPI)
}

// schoolYear resolves the year from the query string, falling back to the
// configured current year.
func (h *Handler) schoolYear(c *fiber.Ctx) string {
	if year := c.Query("schoolYear", c.Query("school_year")); year != "" {
		return year
	}
	return h.DefaultYear
}
