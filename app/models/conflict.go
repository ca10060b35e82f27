package models

// ConflictKind identifies which resource two sessions are fighting over.
type ConflictKind string

const (
	ConflictTeacher ConflictKind = "teacher"
	ConflictRoom    ConflictKind = "room"
	ConflictClass   ConflictKind = "class"
)

// Conflict reports one pair of sessions double-booked on the same weekday and
// slot. Conflicts are recomputed on every detection pass and never persisted.
type Conflict struct {
	ID               string       `json:"id"`
	Kind             ConflictKind `json:"kind"`
	Day              int          `json:"day"`
	DayName          string       `json:"day_name"`
	Time             string       `json:"time"`
	Message          string       `json:"message"`
	InvolvedSessions []Session    `json:"involved_sessions"`
}
