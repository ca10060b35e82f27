package rooms

import (
	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/services"
)

// Handler carries the room registry endpoints' dependencies.
type Handler struct {
	Registry *services.RoomRegistry
}

func SetupRoomRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/rooms")

	api.Get("/", h.ListRoomsAPI)
	api.Get("/candidates", h.ListCandidatesAPI)
	api.Post("/", h.CreateRoomAPI)
	api.Get("/:id", h.GetRoomAPI)
	api.Put("/:id", h.UpdateRoomAPI)
	api.Delete("/:id", h.DeleteRoomAPI)
}
