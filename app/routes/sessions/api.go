package sessions

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/models"
)

// ListSessionsAPI returns sessions for a school year, optionally scoped to
// one class or one teacher. The unscoped form feeds conflict detection, the
// scoped forms feed the grid views.
func (h *Handler) ListSessionsAPI(c *fiber.Ctx) error {
	year := h.schoolYear(c)
	classID := c.Query("classId", c.Query("class_id"))
	teacherID := c.Query("teacherId", c.Query("teacher_id"))

	var (
		sessions []models.Session
		err      error
	)
	switch {
	case classID != "":
		sessions, err = h.Loader.LoadByClass(c.UserContext(), classID, year)
	case teacherID != "":
		sessions, err = h.Loader.LoadByTeacher(c.UserContext(), teacherID, year)
	default:
		sessions, err = h.Loader.LoadAll(c.UserContext(), year)
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *Handler) ListByDayAPI(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid day of week"})
	}

	sessions, err := h.Loader.LoadByDay(c.UserContext(), day, h.schoolYear(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"sessions": sessions, "count": len(sessions)})
}

func (h *Handler) ListByRoomAPI(c *fiber.Ctx) error {
	sessions, err := h.Loader.LoadByRoom(c.UserContext(), c.Params("roomId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"sessions": sessions, "count": len(sessions)})
}

func (h *Handler) GetSessionAPI(c *fiber.Ctx) error {
	session, err := h.Loader.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"session": session})
}

func (h *Handler) CreateSessionAPI(c *fiber.Ctx) error {
	var payload models.SessionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	session, err := h.Editor.Create(c.UserContext(), payload)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Session created successfully",
		"session": session,
	})
}

func (h *Handler) UpdateSessionAPI(c *fiber.Ctx) error {
	var payload models.SessionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	session, err := h.Editor.Update(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Session updated successfully",
		"session": session,
	})
}

func (h *Handler) DeleteSessionAPI(c *fiber.Ctx) error {
	if err := h.Editor.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session deleted successfully"})
}

func (h *Handler) HardDeleteSessionAPI(c *fiber.Ctx) error {
	if err := h.Editor.HardDelete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Session permanently deleted"})
}

// CheckConflictsAPI runs the advisory overlap pre-check for a proposed
// session. The response is a warning list; saving is never blocked by it.
func (h *Handler) CheckConflictsAPI(c *fiber.Ctx) error {
	type checkRequest struct {
		models.SessionPayload
		ExcludeID string `json:"exclude_id"`
	}

	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	warnings, err := h.Editor.CheckConflicts(c.UserContext(), req.SessionPayload, req.ExcludeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"conflicts": warnings, "count": len(warnings)})
}

func writeError(c *fiber.Ctx, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(400).JSON(fiber.Map{"error": vErr.Error(), "fields": vErr.Fields})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	case errors.Is(err, models.ErrStoreUnavailable):
		return c.Status(503).JSON(fiber.Map{"error": "Schedule data unavailable"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
