package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterRegistryLazyCreation(t *testing.T) {
	reg := NewFilterRegistry()

	state := reg.Get("timetable")
	assert.Empty(t, state)

	reg.Set("timetable", "classId", "c1")
	reg.Set("timetable", "day", "1")
	assert.Equal(t, FilterState{"classId": "c1", "day": "1"}, reg.Get("timetable"))
}

func TestFilterRegistryGetReturnsCopy(t *testing.T) {
	reg := NewFilterRegistry()
	reg.Set("rooms", "type", "lab")

	state := reg.Get("rooms")
	state["type"] = "mutated"

	assert.Equal(t, FilterState{"type": "lab"}, reg.Get("rooms"))
}

func TestFilterRegistryEmptyValueClearsKey(t *testing.T) {
	reg := NewFilterRegistry()
	reg.Set("rooms", "type", "lab")
	reg.Set("rooms", "type", "")

	assert.Empty(t, reg.Get("rooms"))
}

func TestFilterRegistryResetIsPerView(t *testing.T) {
	reg := NewFilterRegistry()
	reg.Set("rooms", "type", "lab")
	reg.Set("timetable", "classId", "c1")

	reg.Reset("rooms")

	assert.Empty(t, reg.Get("rooms"))
	assert.Equal(t, FilterState{"classId": "c1"}, reg.Get("timetable"))

	reg.ResetAll()
	assert.Empty(t, reg.Get("timetable"))
}

func TestFilterRegistryInstancesAreIndependent(t *testing.T) {
	a := NewFilterRegistry()
	b := NewFilterRegistry()

	a.Set("timetable", "classId", "c1")

	assert.Empty(t, b.Get("timetable"))
}
