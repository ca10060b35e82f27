// Package inmem provides in-memory session and room stores with the same
// contract as the Postgres ones. Tests wire services against these instead
// of a live database.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"sms-timetable/app/models"
)

// SessionStore holds sessions in insertion order so snapshot listings are
// deterministic, matching the load ordering of the SQL store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions []models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make([]models.Session, 0)}
}

func (store *SessionStore) snapshot(keep func(*models.Session) bool) []models.Session {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]models.Session, 0)
	for i := range store.sessions {
		if keep(&store.sessions[i]) {
			out = append(out, store.sessions[i])
		}
	}
	return out
}

func (store *SessionStore) ListByYear(ctx context.Context, schoolYear string) ([]models.Session, error) {
	return store.snapshot(func(s *models.Session) bool {
		return s.IsActive && s.SchoolYear == schoolYear
	}), nil
}

func (store *SessionStore) ListByClass(ctx context.Context, classID, schoolYear string) ([]models.Session, error) {
	return store.snapshot(func(s *models.Session) bool {
		return s.IsActive && s.SchoolYear == schoolYear && s.ClassID != nil && *s.ClassID == classID
	}), nil
}

func (store *SessionStore) ListByTeacher(ctx context.Context, teacherID, schoolYear string) ([]models.Session, error) {
	return store.snapshot(func(s *models.Session) bool {
		return s.IsActive && s.SchoolYear == schoolYear && s.TeacherID != nil && *s.TeacherID == teacherID
	}), nil
}

func (store *SessionStore) ListByRoom(ctx context.Context, roomID string) ([]models.Session, error) {
	return store.snapshot(func(s *models.Session) bool {
		return s.IsActive && s.RoomID != nil && *s.RoomID == roomID
	}), nil
}

func (store *SessionStore) ListByDay(ctx context.Context, dayOfWeek int, schoolYear string) ([]models.Session, error) {
	return store.snapshot(func(s *models.Session) bool {
		return s.IsActive && s.SchoolYear == schoolYear && s.DayOfWeek == dayOfWeek
	}), nil
}

func (store *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for i := range store.sessions {
		if store.sessions[i].ID == id {
			s := store.sessions[i]
			return &s, nil
		}
	}
	return nil, models.ErrNotFound
}

func (store *SessionStore) Create(ctx context.Context, s *models.Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	s.ID = uuid.New().String()
	s.IsActive = true
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	store.sessions = append(store.sessions, *s)
	return nil
}

func (store *SessionStore) Update(ctx context.Context, s *models.Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.sessions {
		if store.sessions[i].ID == s.ID {
			s.IsActive = store.sessions[i].IsActive
			s.CreatedAt = store.sessions[i].CreatedAt
			s.UpdatedAt = time.Now()
			store.sessions[i] = *s
			return nil
		}
	}
	return models.ErrNotFound
}

func (store *SessionStore) Deactivate(ctx context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.sessions {
		if store.sessions[i].ID == id {
			store.sessions[i].IsActive = false
			store.sessions[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return models.ErrNotFound
}

func (store *SessionStore) Delete(ctx context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.sessions {
		if store.sessions[i].ID == id {
			store.sessions = append(store.sessions[:i], store.sessions[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// RoomStore is the in-memory room registry.
type RoomStore struct {
	mu    sync.RWMutex
	rooms []models.Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make([]models.Room, 0)}
}

func (store *RoomStore) List(ctx context.Context, filters models.RoomFilters) ([]models.Room, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]models.Room, 0)
	for _, r := range store.rooms {
		if filters.Type != "" && r.Type != filters.Type {
			continue
		}
		if filters.Available != nil && r.Available != *filters.Available {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (store *RoomStore) Get(ctx context.Context, id string) (*models.Room, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for i := range store.rooms {
		if store.rooms[i].ID == id {
			r := store.rooms[i]
			return &r, nil
		}
	}
	return nil, models.ErrNotFound
}

func (store *RoomStore) Create(ctx context.Context, r *models.Room) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	r.ID = uuid.New().String()
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	store.rooms = append(store.rooms, *r)
	return nil
}

func (store *RoomStore) Update(ctx context.Context, r *models.Room) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.rooms {
		if store.rooms[i].ID == r.ID {
			r.CreatedAt = store.rooms[i].CreatedAt
			r.UpdatedAt = time.Now()
			store.rooms[i] = *r
			return nil
		}
	}
	return models.ErrNotFound
}

func (store *RoomStore) Delete(ctx context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.rooms {
		if store.rooms[i].ID == id {
			store.rooms = append(store.rooms[:i], store.rooms[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}
