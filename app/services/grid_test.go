package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-timetable/app/models"
)

func TestProjectGridConflictFreeScopeIsBijective(t *testing.T) {
	// Every session of a conflict-free scope lands in exactly one cell; no
	// session is lost or duplicated.
	sessions := []models.Session{
		newSession("s1", withClass("c1"), withSlot(1, "08:00")),
		newSession("s2", withClass("c1"), withSlot(1, "10:00")),
		newSession("s3", withClass("c1"), withSlot(3, "08:00")),
		newSession("s4", withClass("c1"), withSlot(6, "12:00")),
	}

	grid := ProjectGrid(sessions, models.DefaultWeekdays(), models.DefaultTimeSlots())

	require.Len(t, grid, len(sessions))
	seen := map[string]bool{}
	for _, s := range grid {
		assert.False(t, seen[s.ID], "session %s appears twice", s.ID)
		seen[s.ID] = true
	}
	for _, s := range sessions {
		assert.True(t, seen[s.ID], "session %s missing from grid", s.ID)
	}

	assert.Equal(t, "s1", grid[CellKey{Day: 1, Start: "08:00"}].ID)
	assert.Equal(t, "s4", grid[CellKey{Day: 6, Start: "12:00"}].ID)
}

func TestProjectGridDuplicateCellFirstOccurrenceWins(t *testing.T) {
	// Two sessions on the same cell is itself a conflict condition; the
	// projector keeps whichever comes first in input order.
	sessions := []models.Session{
		newSession("first", withClass("c1")),
		newSession("second", withClass("c1")),
	}

	grid := ProjectGrid(sessions, models.DefaultWeekdays(), models.DefaultTimeSlots())

	require.Len(t, grid, 1)
	assert.Equal(t, "first", grid[CellKey{Day: 1, Start: "08:00"}].ID)
}

func TestProjectGridSkipsSessionsOutsideShape(t *testing.T) {
	sessions := []models.Session{
		newSession("in", withSlot(1, "08:00")),
		newSession("odd-slot", withSlot(1, "09:30")),
		newSession("odd-day", withSlot(7, "08:00")),
	}

	grid := ProjectGrid(sessions, models.DefaultWeekdays(), models.DefaultTimeSlots())

	require.Len(t, grid, 1)
	assert.Equal(t, "in", grid[CellKey{Day: 1, Start: "08:00"}].ID)
}

func TestProjectGridHonorsInjectedShape(t *testing.T) {
	// A school with a two-day week and a single afternoon slot reuses the
	// projector unchanged.
	days := []models.Weekday{{Number: 1, Name: "Monday"}, {Number: 2, Name: "Tuesday"}}
	slots := []models.TimeSlot{{Start: "14:00", End: "16:00"}}

	sessions := []models.Session{
		newSession("kept", withSlot(2, "14:00")),
		newSession("dropped", withSlot(3, "14:00")),
	}

	grid := ProjectGrid(sessions, days, slots)

	require.Len(t, grid, 1)
	assert.Equal(t, "kept", grid[CellKey{Day: 2, Start: "14:00"}].ID)
}

func TestStructureByDayOrdersWeekAndStartTimes(t *testing.T) {
	sessions := []models.Session{
		newSession("late-monday", withSlot(1, "12:00")),
		newSession("tuesday", withSlot(2, "08:00")),
		newSession("early-monday", withSlot(1, "08:00")),
	}

	structure := StructureByDay(sessions, models.DefaultWeekdays())

	require.Len(t, structure, 6)
	assert.Equal(t, "Monday", structure[0].DayName)
	require.Len(t, structure[0].Sessions, 2)
	assert.Equal(t, "early-monday", structure[0].Sessions[0].ID)
	assert.Equal(t, "late-monday", structure[0].Sessions[1].ID)
	require.Len(t, structure[1].Sessions, 1)
	assert.Equal(t, "tuesday", structure[1].Sessions[0].ID)
	// Days without sessions stay present with empty lists.
	assert.Empty(t, structure[5].Sessions)
}
