package models

import "time"

// Session represents one recurring lesson: a subject taught by a teacher in a
// room, assigned to a class on a fixed weekday and time slot within a school
// year. Class, subject and teacher ids are weak references into registries
// owned elsewhere; this service never mutates those entities.
type Session struct {
	ID         string  `json:"id" db:"id"`
	ClassID    *string `json:"class_id" db:"class_id"`
	SubjectID  *string `json:"subject_id" db:"subject_id"`
	TeacherID  *string `json:"teacher_id" db:"teacher_id"`
	RoomID     *string `json:"room_id" db:"room_id"`
	DayOfWeek  int     `json:"day_of_week" db:"day_of_week"`
	StartTime  string  `json:"start_time" db:"start_time"`
	EndTime    string  `json:"end_time" db:"end_time"`
	SchoolYear string  `json:"school_year" db:"school_year"`

	// Display snapshots, normalized at load time so downstream code never
	// has to guess between alternative name fields.
	ClassName   string `json:"class_name" db:"class_name"`
	SubjectName string `json:"subject_name" db:"subject_name"`
	TeacherName string `json:"teacher_name" db:"teacher_name"`
	RoomName    string `json:"room_name" db:"room_name"`

	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SessionPayload is the write shape accepted by create and update.
type SessionPayload struct {
	ClassID     string `json:"class_id"`
	SubjectID   string `json:"subject_id"`
	TeacherID   string `json:"teacher_id"`
	RoomID      string `json:"room_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SchoolYear  string `json:"school_year"`
	ClassName   string `json:"class_name"`
	SubjectName string `json:"subject_name"`
	TeacherName string `json:"teacher_name"`
}

// TeacherLabel returns the display name of the assigned teacher, falling back
// to the raw id when no name snapshot was stored.
func (s *Session) TeacherLabel() string {
	if s.TeacherName != "" {
		return s.TeacherName
	}
	if s.TeacherID != nil {
		return *s.TeacherID
	}
	return ""
}

// RoomLabel returns the room name, falling back to the raw id.
func (s *Session) RoomLabel() string {
	if s.RoomName != "" {
		return s.RoomName
	}
	if s.RoomID != nil {
		return *s.RoomID
	}
	return ""
}

// ClassLabel returns the class name, falling back to the raw id.
func (s *Session) ClassLabel() string {
	if s.ClassName != "" {
		return s.ClassName
	}
	if s.ClassID != nil {
		return *s.ClassID
	}
	return ""
}
