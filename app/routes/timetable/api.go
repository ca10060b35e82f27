package timetable

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sms-timetable/app/models"
	"sms-timetable/app/services"
)

// gridCell is one display cell: a slot with its session, or empty.
type gridCell struct {
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Session *models.Session `json:"session"`
}

// gridDay is one weekday column of the display grid.
type gridDay struct {
	Day     int        `json:"day"`
	DayName string     `json:"day_name"`
	Cells   []gridCell `json:"cells"`
}

// buildGrid projects a scoped session list and lays the result out in the
// injected week/slot order, with explicit empty cells.
func (h *Handler) buildGrid(sessions []models.Session) []gridDay {
	grid := services.ProjectGrid(sessions, h.Days, h.Slots)

	out := make([]gridDay, 0, len(h.Days))
	for _, day := range h.Days {
		cells := make([]gridCell, 0, len(h.Slots))
		for _, slot := range h.Slots {
			cell := gridCell{Start: slot.Start, End: slot.End}
			if s, ok := grid[services.CellKey{Day: day.Number, Start: slot.Start}]; ok {
				session := s
				cell.Session = &session
			}
			cells = append(cells, cell)
		}
		out = append(out, gridDay{Day: day.Number, DayName: day.Name, Cells: cells})
	}
	return out
}

// ClassGridAPI returns one class's weekly grid.
func (h *Handler) ClassGridAPI(c *fiber.Ctx) error {
	sessions, err := h.Loader.LoadByClass(c.UserContext(), c.Params("id"), h.schoolYear(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"grid":  h.buildGrid(sessions),
		"count": len(sessions),
	})
}

// TeacherGridAPI returns one teacher's weekly grid.
func (h *Handler) TeacherGridAPI(c *fiber.Ctx) error {
	sessions, err := h.Loader.LoadByTeacher(c.UserContext(), c.Params("id"), h.schoolYear(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"grid":  h.buildGrid(sessions),
		"count": len(sessions),
	})
}

// ClassStructureAPI returns one class's sessions grouped by weekday in week
// order, each day sorted by start time.
func (h *Handler) ClassStructureAPI(c *fiber.Ctx) error {
	sessions, err := h.Loader.LoadByClass(c.UserContext(), c.Params("id"), h.schoolYear(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"structure": services.StructureByDay(sessions, h.Days),
	})
}

// ConflictsAPI runs a detection pass over the year's full session set. The
// list is recomputed on every call; a populated list is a 200, conflicts are
// data and never errors.
func (h *Handler) ConflictsAPI(c *fiber.Ctx) error {
	conflicts, err := h.Loader.Conflicts(c.UserContext(), h.schoolYear(c))
	if err != nil {
		return writeError(c, err)
	}

	byKind := map[models.ConflictKind]int{}
	for _, conflict := range conflicts {
		byKind[conflict.Kind]++
	}

	return c.JSON(fiber.Map{
		"conflicts": conflicts,
		"count":     len(conflicts),
		"teacher":   byKind[models.ConflictTeacher],
		"room":      byKind[models.ConflictRoom],
		"class":     byKind[models.ConflictClass],
	})
}

// TimetableIndexPage renders the weekly grid for one class.
func (h *Handler) TimetableIndexPage(c *fiber.Ctx) error {
	classID := c.Query("classId")

	var sessions []models.Session
	var err error
	if classID != "" {
		sessions, err = h.Loader.LoadByClass(c.UserContext(), classID, h.schoolYear(c))
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Schedule data unavailable")
		}
	}

	return c.Render("timetable/index", fiber.Map{
		"Title":      "Timetable",
		"ClassID":    classID,
		"SchoolYear": h.schoolYear(c),
		"Grid":       h.buildGrid(sessions),
	})
}

// ConflictsPage renders the flat conflict report.
func (h *Handler) ConflictsPage(c *fiber.Ctx) error {
	conflicts, err := h.Loader.Conflicts(c.UserContext(), h.schoolYear(c))
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Schedule data unavailable")
	}

	return c.Render("timetable/conflicts", fiber.Map{
		"Title":      "Schedule Conflicts",
		"SchoolYear": h.schoolYear(c),
		"Conflicts":  conflicts,
		"Count":      len(conflicts),
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, models.ErrStoreUnavailable):
		return c.Status(503).JSON(fiber.Map{"error": "Schedule data unavailable"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
