package services

import (
	"context"
	"log"

	"sms-timetable/app/models"
)

// SessionStore is the CRUD contract the timetable engine needs from its
// backing store. The Postgres implementation lives in app/database, the
// in-memory one in app/database/inmem.
type SessionStore interface {
	ListByYear(ctx context.Context, schoolYear string) ([]models.Session, error)
	ListByClass(ctx context.Context, classID, schoolYear string) ([]models.Session, error)
	ListByTeacher(ctx context.Context, teacherID, schoolYear string) ([]models.Session, error)
	ListByRoom(ctx context.Context, roomID string) ([]models.Session, error)
	ListByDay(ctx context.Context, dayOfWeek int, schoolYear string) ([]models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Create(ctx context.Context, s *models.Session) error
	Update(ctx context.Context, s *models.Session) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// Loader fetches session snapshots for detection and grid views. It is
// read-only; a store failure surfaces as ErrStoreUnavailable and must be
// treated as "no schedule data", never as an empty schedule.
type Loader struct {
	store SessionStore
	days  []models.Weekday
}

func NewLoader(store SessionStore, days []models.Weekday) *Loader {
	return &Loader{store: store, days: days}
}

// LoadAll returns every active session of a school year and refreshes the
// conflict pass over the new snapshot.
func (l *Loader) LoadAll(ctx context.Context, schoolYear string) ([]models.Session, error) {
	sessions, err := l.store.ListByYear(ctx, schoolYear)
	if err != nil {
		return nil, err
	}
	l.recompute(schoolYear, sessions)
	return sessions, nil
}

// LoadByClass returns one class's active sessions for a school year.
func (l *Loader) LoadByClass(ctx context.Context, classID, schoolYear string) ([]models.Session, error) {
	return l.store.ListByClass(ctx, classID, schoolYear)
}

// LoadByTeacher returns one teacher's active sessions for a school year.
func (l *Loader) LoadByTeacher(ctx context.Context, teacherID, schoolYear string) ([]models.Session, error) {
	return l.store.ListByTeacher(ctx, teacherID, schoolYear)
}

// LoadByRoom returns the active sessions held in one room.
func (l *Loader) LoadByRoom(ctx context.Context, roomID string) ([]models.Session, error) {
	return l.store.ListByRoom(ctx, roomID)
}

// LoadByDay returns the active sessions of one weekday for a school year.
func (l *Loader) LoadByDay(ctx context.Context, dayOfWeek int, schoolYear string) ([]models.Session, error) {
	return l.store.ListByDay(ctx, dayOfWeek, schoolYear)
}

// Get returns a single session by id.
func (l *Loader) Get(ctx context.Context, id string) (*models.Session, error) {
	return l.store.Get(ctx, id)
}

// Conflicts runs a full detection pass over the year's current snapshot.
// The result is computed on demand on every call, never cached across
// writes. A populated list is data, not an error.
func (l *Loader) Conflicts(ctx context.Context, schoolYear string) ([]models.Conflict, error) {
	sessions, err := l.store.ListByYear(ctx, schoolYear)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(sessions, l.days), nil
}

// Recompute re-runs detection after a write. Replaces the source system's
// implicit reactive recomputation with an explicit call site.
func (l *Loader) Recompute(ctx context.Context, schoolYear string) {
	sessions, err := l.store.ListByYear(ctx, schoolYear)
	if err != nil {
		log.Printf("Conflict recompute skipped, store unavailable: %v", err)
		return
	}
	l.recompute(schoolYear, sessions)
}

func (l *Loader) recompute(schoolYear string, sessions []models.Session) {
	conflicts := DetectConflicts(sessions, l.days)
	if len(conflicts) > 0 {
		log.Printf("Detected %d scheduling conflicts for %s", len(conflicts), schoolYear)
	}
}
