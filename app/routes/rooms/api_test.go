package rooms

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-timetable/app/database/inmem"
	"sms-timetable/app/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	SetupRoomRoutes(app, &Handler{
		Registry: services.NewRoomRegistry(inmem.NewRoomStore()),
	})
	return app
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRoomCRUDRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/rooms/", map[string]interface{}{
		"name":      "Lab 1",
		"capacity":  30,
		"type":      "laboratory",
		"equipment": "microscopes",
	}))
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	room := decodeBody(t, resp)["room"].(map[string]interface{})
	id := room["id"].(string)
	assert.Equal(t, true, room["available"]) // rooms default to available

	resp, err = app.Test(jsonRequest(t, "PUT", "/api/rooms/"+id, map[string]interface{}{
		"available": false,
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	updated := decodeBody(t, resp)["room"].(map[string]interface{})
	assert.Equal(t, false, updated["available"])
	assert.Equal(t, "Lab 1", updated["name"]) // untouched fields survive partial update

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/rooms/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/rooms/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRoomCreateRequiresName(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/rooms/", map[string]interface{}{
		"capacity": 10,
	}))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp)
	fields := body["fields"].([]interface{})
	assert.Contains(t, fields, "name")
}

func TestRoomCandidatesOnlyAvailable(t *testing.T) {
	app := newTestApp(t)

	available := map[string]interface{}{"name": "Room A"}
	unavailable := map[string]interface{}{"name": "Room B", "available": false}
	for _, payload := range []map[string]interface{}{available, unavailable} {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/rooms/", payload))
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/rooms/candidates", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])
	rooms := body["rooms"].([]interface{})
	first := rooms[0].(map[string]interface{})
	assert.Equal(t, "Room A", first["name"])
}

func TestRoomListFilters(t *testing.T) {
	app := newTestApp(t)

	seed := []map[string]interface{}{
		{"name": "Lab", "type": "laboratory"},
		{"name": "Gym", "type": "sports", "available": false},
		{"name": "Classroom", "type": "standard"},
	}
	for _, payload := range seed {
		resp, err := app.Test(jsonRequest(t, "POST", "/api/rooms/", payload))
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/rooms/?type=laboratory", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), decodeBody(t, resp)["count"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/rooms/?available=false", nil))
	require.NoError(t, err)
	assert.Equal(t, float64(1), decodeBody(t, resp)["count"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/rooms/?available=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
