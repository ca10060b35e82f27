package services

import (
	"context"
	"fmt"

	"sms-timetable/app/models"
)

// CheckConflicts is the advisory pre-write check: given a proposed session,
// it reports which existing sessions it would clash with, using interval
// overlap on the same weekday. Its result is informational only and never
// blocks a write; the authoritative detection pass stays slot-based.
//
// Overlap treats touching intervals as clashing, as the source system did.
func (e *Editor) CheckConflicts(ctx context.Context, payload models.SessionPayload, excludeID string) ([]string, error) {
	if payload.SchoolYear == "" {
		payload.SchoolYear = e.defaultYear
	}

	sessions, err := e.store.ListByYear(ctx, payload.SchoolYear)
	if err != nil {
		return nil, err
	}

	warnings := make([]string, 0)
	for i := range sessions {
		s := &sessions[i]
		if s.ID == excludeID || s.DayOfWeek != payload.DayOfWeek {
			continue
		}
		if !intervalsOverlap(payload.StartTime, payload.EndTime, slotStart(s.StartTime), slotStart(s.EndTime)) {
			continue
		}

		if s.RoomID != nil && payload.RoomID != "" && *s.RoomID == payload.RoomID {
			warnings = append(warnings, fmt.Sprintf("Room conflict: %q already occupied", s.RoomLabel()))
		}
		if s.TeacherID != nil && payload.TeacherID != "" && *s.TeacherID == payload.TeacherID {
			warnings = append(warnings, "Teacher conflict: already teaching at this time")
		}
		if s.ClassID != nil && payload.ClassID != "" && *s.ClassID == payload.ClassID {
			warnings = append(warnings, "Class conflict: already has a course at this time")
		}
	}
	return warnings, nil
}

// intervalsOverlap works on HH:MM strings, which order lexicographically.
func intervalsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd < bStart || aStart > bEnd)
}
