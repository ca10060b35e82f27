package services

import "sms-timetable/app/models"

// maxDayOfWeek bounds the accepted day range. The grid shape is injectable,
// but session writes always address the full Monday-to-Saturday week the
// store understands.
const maxDayOfWeek = 6

// ValidateTimeFormat validates time format (HH:MM)
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != 5 || timeStr[2] != ':' {
		return false
	}
	for i, c := range timeStr {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidateSessionPayload checks that every required field is present and
// within its domain, collecting all offending field names rather than
// stopping at the first.
func ValidateSessionPayload(payload models.SessionPayload) error {
	var fields []string

	if payload.ClassID == "" {
		fields = append(fields, "class_id")
	}
	if payload.SubjectID == "" {
		fields = append(fields, "subject_id")
	}
	if payload.TeacherID == "" {
		fields = append(fields, "teacher_id")
	}
	if payload.RoomID == "" {
		fields = append(fields, "room_id")
	}
	if payload.DayOfWeek < 1 || payload.DayOfWeek > maxDayOfWeek {
		fields = append(fields, "day_of_week")
	}
	if !ValidateTimeFormat(payload.StartTime) {
		fields = append(fields, "start_time")
	}
	if !ValidateTimeFormat(payload.EndTime) {
		fields = append(fields, "end_time")
	}
	if payload.SchoolYear == "" {
		fields = append(fields, "school_year")
	}

	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}
