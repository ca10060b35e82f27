package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"sms-timetable/app/models"
)

// Config carries everything main needs to wire the service.
type Config struct {
	ListenAddr  string
	DatabaseURL string
	SchoolYear  string
	Days        []models.Weekday
	Slots       []models.TimeSlot
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		SchoolYear: getenv("SCHOOL_YEAR", "2024-2025"),
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	} else {
		host := getenv("PGHOST", "localhost")
		port := getenv("PGPORT", "5432")
		user := getenv("PGUSER", "postgres")
		dbname := getenv("PGDATABASE", "sms_timetable")
		sslmode := getenv("PGSSLMODE", "disable")
		dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=10",
			host, port, user, dbname, sslmode)
		if pw := os.Getenv("PGPASSWORD"); pw != "" {
			dsn += " password=" + pw
		}
		cfg.DatabaseURL = dsn
	}

	days, err := parseDays(os.Getenv("TIMETABLE_DAYS"))
	if err != nil {
		return nil, err
	}
	cfg.Days = days

	slots, err := parseSlots(os.Getenv("TIMETABLE_SLOTS"))
	if err != nil {
		return nil, err
	}
	cfg.Slots = slots

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseDays reads a "1-6" style range against the standard week. An empty
// value keeps the Monday-to-Saturday default.
func parseDays(raw string) ([]models.Weekday, error) {
	week := models.DefaultWeekdays()
	if raw == "" {
		return week, nil
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid TIMETABLE_DAYS %q, expected e.g. 1-5", raw)
	}
	from, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	to, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || from < 1 || to > len(week) || from > to {
		return nil, fmt.Errorf("invalid TIMETABLE_DAYS %q, expected e.g. 1-5", raw)
	}
	return week[from-1 : to], nil
}

// parseSlots reads a comma-separated "08:00-10:00,10:00-12:00" list. An
// empty value keeps the default three-period morning.
func parseSlots(raw string) ([]models.TimeSlot, error) {
	if raw == "" {
		return models.DefaultTimeSlots(), nil
	}

	var slots []models.TimeSlot
	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "-", 2)
		if len(parts) != 2 || !validClock(parts[0]) || !validClock(parts[1]) {
			return nil, fmt.Errorf("invalid TIMETABLE_SLOTS entry %q, expected HH:MM-HH:MM", item)
		}
		slots = append(slots, models.TimeSlot{Start: parts[0], End: parts[1]})
	}
	return slots, nil
}

func validClock(v string) bool {
	parts := strings.Split(v, ":")
	return len(parts) == 2 && len(parts[0]) == 2 && len(parts[1]) == 2
}
