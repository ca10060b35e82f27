package timetable

import (
	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/models"
	"sms-timetable/app/services"
)

// Handler carries the grid and conflict endpoints' dependencies, including
// the injected grid shape.
type Handler struct {
	Loader      *services.Loader
	Days        []models.Weekday
	Slots       []models.TimeSlot
	DefaultYear string
}

func SetupTimetableRoutes(app *fiber.App, h *Handler) {
	// Web pages
	app.Get("/timetable", h.TimetableIndexPage)
	app.Get("/timetable/conflicts", h.ConflictsPage)

	// API routes
	api := app.Group("/api/timetable")
	api.Get("/class/:id", h.ClassGridAPI)
	api.Get("/class/:id/structure", h.ClassStructureAPI)
	api.Get("/teacher/:id", h.TeacherGridAPI)

	app.Get("/api/conflicts", h.ConflictsAPI)
}

func (h *Handler) schoolYear(c *fiber.Ctx) string {
	if year := c.Query("schoolYear", c.Query("school_year")); year != "" {
		return year
	}
	return h.DefaultYear
}
