package timetable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-timetable/app/database/inmem"
	"sms-timetable/app/models"
	"sms-timetable/app/services"
)

const testYear = "2024-2025"

func strPtr(v string) *string { return &v }

func seedSession(t *testing.T, store *inmem.SessionStore, classID, teacherID, roomID string, day int, start string) {
	t.Helper()

	s := &models.Session{
		ClassID:    strPtr(classID),
		SubjectID:  strPtr("math"),
		TeacherID:  strPtr(teacherID),
		RoomID:     strPtr(roomID),
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    "10:00",
		SchoolYear: testYear,
	}
	require.NoError(t, store.Create(context.Background(), s))
}

func newTestApp(t *testing.T) (*fiber.App, *inmem.SessionStore) {
	t.Helper()

	store := inmem.NewSessionStore()
	loader := services.NewLoader(store, models.DefaultWeekdays())

	app := fiber.New()
	SetupTimetableRoutes(app, &Handler{
		Loader:      loader,
		Days:        models.DefaultWeekdays(),
		Slots:       models.DefaultTimeSlots(),
		DefaultYear: testYear,
	})
	return app, store
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestClassGridAPIPlacesSessionsInCells(t *testing.T) {
	app, store := newTestApp(t)
	seedSession(t, store, "c1", "t1", "r1", 1, "08:00")
	seedSession(t, store, "c1", "t2", "r2", 2, "10:00")
	seedSession(t, store, "c2", "t3", "r3", 1, "08:00") // other class, out of scope

	resp, err := app.Test(httptest.NewRequest("GET", "/api/timetable/class/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["count"])

	grid, ok := body["grid"].([]interface{})
	require.True(t, ok)
	require.Len(t, grid, 6)

	monday := grid[0].(map[string]interface{})
	assert.Equal(t, "Monday", monday["day_name"])
	cells := monday["cells"].([]interface{})
	require.Len(t, cells, 3)

	first := cells[0].(map[string]interface{})
	require.NotNil(t, first["session"])
	session := first["session"].(map[string]interface{})
	assert.Equal(t, "c1", session["class_id"])

	// 10:00 Monday is empty for this class.
	second := cells[1].(map[string]interface{})
	assert.Nil(t, second["session"])
}

func TestConflictsAPICountsByKind(t *testing.T) {
	app, store := newTestApp(t)
	// Scenario A: three sessions, all Monday 08:00, same teacher, distinct
	// rooms and classes.
	seedSession(t, store, "c1", "5", "r1", 1, "08:00")
	seedSession(t, store, "c2", "5", "r2", 1, "08:00")
	seedSession(t, store, "c3", "5", "r3", 1, "08:00")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/conflicts?schoolYear="+testYear, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["count"])
	assert.Equal(t, float64(3), body["teacher"])
	assert.Equal(t, float64(0), body["room"])
	assert.Equal(t, float64(0), body["class"])
}

func TestConflictsAPIEmptyScheduleIsOK(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/conflicts", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])
}

func TestClassStructureAPIOrdersDays(t *testing.T) {
	app, store := newTestApp(t)
	seedSession(t, store, "c1", "t1", "r1", 2, "10:00")
	seedSession(t, store, "c1", "t1", "r1", 2, "08:00")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/timetable/class/c1/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	structure := body["structure"].([]interface{})
	require.Len(t, structure, 6)

	tuesday := structure[1].(map[string]interface{})
	sessions := tuesday["sessions"].([]interface{})
	require.Len(t, sessions, 2)
	first := sessions[0].(map[string]interface{})
	assert.Equal(t, "08:00", first["start_time"])
}
