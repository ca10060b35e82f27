package models

// TimeSlot is one recurring teaching period. The slot list is configuration,
// not a constant of this service: schools with different bell schedules
// inject their own ordered list.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Weekday pairs a day number (1 = Monday) with its display name. The working
// week is injected alongside the slots.
type Weekday struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// DefaultWeekdays is the Monday-to-Saturday teaching week.
func DefaultWeekdays() []Weekday {
	return []Weekday{
		{1, "Monday"},
		{2, "Tuesday"},
		{3, "Wednesday"},
		{4, "Thursday"},
		{5, "Friday"},
		{6, "Saturday"},
	}
}

// DefaultTimeSlots is the standard three two-hour morning periods.
func DefaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{Start: "08:00", End: "10:00"},
		{Start: "10:00", End: "12:00"},
		{Start: "12:00", End: "14:00"},
	}
}

// DayName resolves a day number against an injected week, returning "" for
// days outside it.
func DayName(days []Weekday, number int) string {
	for _, d := range days {
		if d.Number == number {
			return d.Name
		}
	}
	return ""
}
