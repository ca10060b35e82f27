package services

import (
	"sort"

	"sms-timetable/app/models"
)

// CellKey addresses one grid cell by weekday number and slot start time.
type CellKey struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
}

// Grid maps occupied cells to their session. Cells outside the injected
// week/slot shape never appear.
type Grid map[CellKey]models.Session

// ProjectGrid lays a scoped session list (one class or one teacher) onto the
// injected weekday x slot grid. Every in-scope session lands in exactly one
// cell. If two sessions map to the same cell — itself a conflict condition —
// the first one in input order wins; which session that is carries no
// meaning in a conflicted schedule. Sessions that do not match any injected
// day or slot are left out.
func ProjectGrid(sessions []models.Session, days []models.Weekday, slots []models.TimeSlot) Grid {
	starts := make(map[string]bool, len(slots))
	for _, slot := range slots {
		starts[slot.Start] = true
	}

	grid := make(Grid)
	for _, s := range sessions {
		start := slotStart(s.StartTime)
		if !starts[start] || models.DayName(days, s.DayOfWeek) == "" {
			continue
		}
		key := CellKey{Day: s.DayOfWeek, Start: start}
		if _, taken := grid[key]; taken {
			continue
		}
		grid[key] = s
	}
	return grid
}

// DaySchedule is one weekday's sessions, start-time ordered.
type DaySchedule struct {
	Day      int              `json:"day"`
	DayName  string           `json:"day_name"`
	Sessions []models.Session `json:"sessions"`
}

// StructureByDay groups a scoped session list by weekday, in week order,
// each day's sessions sorted by start time. Days without sessions are kept
// with an empty list so consumers can render a full week.
func StructureByDay(sessions []models.Session, days []models.Weekday) []DaySchedule {
	structure := make([]DaySchedule, 0, len(days))
	for _, day := range days {
		daily := make([]models.Session, 0)
		for _, s := range sessions {
			if s.DayOfWeek == day.Number {
				daily = append(daily, s)
			}
		}
		sort.SliceStable(daily, func(i, j int) bool {
			return slotStart(daily[i].StartTime) < slotStart(daily[j].StartTime)
		})
		structure = append(structure, DaySchedule{Day: day.Number, DayName: day.Name, Sessions: daily})
	}
	return structure
}
