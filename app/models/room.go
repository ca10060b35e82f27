package models

import "time"

// Room is a physical classroom. Rooms have their own lifecycle, independent
// of the sessions that reference them.
type Room struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Capacity  int       `json:"capacity" db:"capacity"`
	Type      string    `json:"type" db:"type"`
	Equipment string    `json:"equipment" db:"equipment"`
	Available bool      `json:"available" db:"available"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RoomPayload is the write shape for room create and update. Pointer fields
// let update requests change only the fields they carry.
type RoomPayload struct {
	Name      *string `json:"name"`
	Capacity  *int    `json:"capacity"`
	Type      *string `json:"type"`
	Equipment *string `json:"equipment"`
	Available *bool   `json:"available"`
}

// RoomFilters narrows room listings; zero values match everything.
type RoomFilters struct {
	Type      string
	Available *bool
}
