package services

import (
	"fmt"

	"sms-timetable/app/models"
)

type slotKey struct {
	day   int
	start string
}

// slotStart trims seconds off "HH:MM:SS" values so stores that return either
// format compare equal.
func slotStart(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// DetectConflicts scans a session snapshot for double-bookings: two sessions
// on the same weekday and start slot sharing a teacher, a room or a class.
// Comparison is slot-granularity equality on the start time, not interval
// overlap; sessions with different start times are never compared even when
// their intervals would overlap.
//
// Sessions are grouped by (day, start) first, so cost is near-linear in the
// number of occupied slots instead of quadratic over the whole set; the
// output is identical to comparing every unordered pair. No deduplication is
// applied: k sessions sharing a teacher slot produce k(k-1)/2 teacher
// conflicts, one per pair, and a single pair can yield up to three conflicts
// of different kinds.
//
// Sessions whose day is outside the injected week or whose start time is
// empty are skipped rather than failing the whole pass.
func DetectConflicts(sessions []models.Session, days []models.Weekday) []models.Conflict {
	buckets := make(map[slotKey][]*models.Session)
	var order []slotKey

	for i := range sessions {
		s := &sessions[i]
		if s.StartTime == "" || models.DayName(days, s.DayOfWeek) == "" {
			continue
		}
		key := slotKey{day: s.DayOfWeek, start: slotStart(s.StartTime)}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], s)
	}

	conflicts := make([]models.Conflict, 0)
	for _, key := range order {
		bucket := buckets[key]
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				conflicts = append(conflicts, pairConflicts(bucket[i], bucket[j], days)...)
			}
		}
	}
	return conflicts
}

// pairConflicts evaluates the three independent predicates for one session
// pair already known to share a slot. Nil ids never match each other: two
// sessions with no assigned teacher are not a teacher conflict.
func pairConflicts(a, b *models.Session, days []models.Weekday) []models.Conflict {
	var out []models.Conflict

	if a.TeacherID != nil && b.TeacherID != nil && *a.TeacherID == *b.TeacherID {
		out = append(out, newConflict(models.ConflictTeacher, a, b, days,
			fmt.Sprintf("Teacher %q is assigned to two courses at the same time", a.TeacherLabel())))
	}
	if a.RoomID != nil && b.RoomID != nil && *a.RoomID == *b.RoomID {
		out = append(out, newConflict(models.ConflictRoom, a, b, days,
			fmt.Sprintf("Room %q is used by two classes at the same time", a.RoomLabel())))
	}
	if a.ClassID != nil && b.ClassID != nil && *a.ClassID == *b.ClassID {
		out = append(out, newConflict(models.ConflictClass, a, b, days,
			fmt.Sprintf("Class %q has two courses scheduled at the same time", a.ClassLabel())))
	}
	return out
}

func newConflict(kind models.ConflictKind, a, b *models.Session, days []models.Weekday, message string) models.Conflict {
	return models.Conflict{
		ID:               fmt.Sprintf("%s-%s-%s", kind, a.ID, b.ID),
		Kind:             kind,
		Day:              a.DayOfWeek,
		DayName:          models.DayName(days, a.DayOfWeek),
		Time:             slotStart(a.StartTime),
		Message:          message,
		InvolvedSessions: []models.Session{*a, *b},
	}
}
