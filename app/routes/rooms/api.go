package rooms

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/models"
)

// ListRoomsAPI returns rooms, filterable by type and availability.
func (h *Handler) ListRoomsAPI(c *fiber.Ctx) error {
	filters := models.RoomFilters{Type: c.Query("type")}
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid available filter"})
		}
		filters.Available = &available
	}

	rooms, err := h.Registry.List(c.UserContext(), filters)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"rooms": rooms, "count": len(rooms)})
}

// ListCandidatesAPI returns the rooms a session can be assigned to (only
// those marked available).
func (h *Handler) ListCandidatesAPI(c *fiber.Ctx) error {
	rooms, err := h.Registry.Candidates(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"rooms": rooms, "count": len(rooms)})
}

func (h *Handler) GetRoomAPI(c *fiber.Ctx) error {
	room, err := h.Registry.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"room": room})
}

func (h *Handler) CreateRoomAPI(c *fiber.Ctx) error {
	var payload models.RoomPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	room, err := h.Registry.Create(c.UserContext(), payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Room created successfully",
		"room":    room,
	})
}

func (h *Handler) UpdateRoomAPI(c *fiber.Ctx) error {
	var payload models.RoomPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	room, err := h.Registry.Update(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Room updated successfully",
		"room":    room,
	})
}

func (h *Handler) DeleteRoomAPI(c *fiber.Ctx) error {
	if err := h.Registry.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Room deleted successfully"})
}

func writeError(c *fiber.Ctx, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(400).JSON(fiber.Map{"error": vErr.Error(), "fields": vErr.Fields})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, models.ErrStoreUnavailable):
		return c.Status(503).JSON(fiber.Map{"error": "Room data unavailable"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
