package services

import (
	"context"

	"sms-timetable/app/models"
)

// RoomStore is the room registry's CRUD contract.
type RoomStore interface {
	List(ctx context.Context, filters models.RoomFilters) ([]models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	Create(ctx context.Context, r *models.Room) error
	Update(ctx context.Context, r *models.Room) error
	Delete(ctx context.Context, id string) error
}

// RoomRegistry wraps the store with the small amount of policy the registry
// has: payload application and the available-room candidate list used when
// assigning a room to a session.
type RoomRegistry struct {
	store RoomStore
}

func NewRoomRegistry(store RoomStore) *RoomRegistry {
	return &RoomRegistry{store: store}
}

func (reg *RoomRegistry) List(ctx context.Context, filters models.RoomFilters) ([]models.Room, error) {
	return reg.store.List(ctx, filters)
}

// Candidates returns the rooms a session can be assigned to: only those
// currently marked available.
func (reg *RoomRegistry) Candidates(ctx context.Context) ([]models.Room, error) {
	available := true
	return reg.store.List(ctx, models.RoomFilters{Available: &available})
}

func (reg *RoomRegistry) Get(ctx context.Context, id string) (*models.Room, error) {
	return reg.store.Get(ctx, id)
}

// Create registers a new room; name is the only required field and rooms
// default to available, as in the source registry.
func (reg *RoomRegistry) Create(ctx context.Context, payload models.RoomPayload) (*models.Room, error) {
	if payload.Name == nil || *payload.Name == "" {
		return nil, &models.ValidationError{Fields: []string{"name"}}
	}

	room := &models.Room{Name: *payload.Name, Available: true}
	if payload.Capacity != nil {
		room.Capacity = *payload.Capacity
	}
	if payload.Type != nil {
		room.Type = *payload.Type
	}
	if payload.Equipment != nil {
		room.Equipment = *payload.Equipment
	}
	if payload.Available != nil {
		room.Available = *payload.Available
	}

	if err := reg.store.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Update applies a partial payload: fields the request does not carry keep
// their stored values.
func (reg *RoomRegistry) Update(ctx context.Context, id string, payload models.RoomPayload) (*models.Room, error) {
	room, err := reg.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		room.Name = *payload.Name
	}
	if payload.Capacity != nil {
		room.Capacity = *payload.Capacity
	}
	if payload.Type != nil {
		room.Type = *payload.Type
	}
	if payload.Equipment != nil {
		room.Equipment = *payload.Equipment
	}
	if payload.Available != nil {
		room.Available = *payload.Available
	}

	if err := reg.store.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (reg *RoomRegistry) Delete(ctx context.Context, id string) error {
	return reg.store.Delete(ctx, id)
}
