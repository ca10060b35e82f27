package services

import (
	"context"
	"sync"

	"sms-timetable/app/models"
)

// Editor validates and applies single-session writes. It deliberately never
// consults the conflict detector before writing: a create or update that
// double-books a teacher, room or class succeeds, and the violation shows up
// on the next detection pass ("detect, don't prevent").
type Editor struct {
	store       SessionStore
	loader      *Loader
	defaultYear string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEditor(store SessionStore, loader *Loader, defaultYear string) *Editor {
	return &Editor{
		store:       store,
		loader:      loader,
		defaultYear: defaultYear,
		locks:       make(map[string]*sync.Mutex),
	}
}

// lockFor serializes concurrent writes to the same session id. The source
// system lets such writes race with last-write-wins; cross-id races keep
// that behavior, same-id updates are made atomic here.
func (e *Editor) lockFor(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}

// Create validates the payload, persists the session and returns it with its
// assigned id, then triggers a conflict recompute.
func (e *Editor) Create(ctx context.Context, payload models.SessionPayload) (*models.Session, error) {
	if payload.SchoolYear == "" {
		payload.SchoolYear = e.defaultYear
	}
	if err := ValidateSessionPayload(payload); err != nil {
		return nil, err
	}

	s := payloadToSession(payload)
	if err := e.store.Create(ctx, s); err != nil {
		return nil, err
	}

	e.loader.Recompute(ctx, s.SchoolYear)
	return s, nil
}

// Update validates the payload and overwrites the session's fields; unknown
// ids fail with ErrNotFound.
func (e *Editor) Update(ctx context.Context, id string, payload models.SessionPayload) (*models.Session, error) {
	if payload.SchoolYear == "" {
		payload.SchoolYear = e.defaultYear
	}
	if err := ValidateSessionPayload(payload); err != nil {
		return nil, err
	}

	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	s := payloadToSession(payload)
	s.ID = id
	if err := e.store.Update(ctx, s); err != nil {
		return nil, err
	}

	e.loader.Recompute(ctx, s.SchoolYear)
	return s, nil
}

// Delete soft-deletes a session; unknown ids fail with ErrNotFound.
func (e *Editor) Delete(ctx context.Context, id string) error {
	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	existing, err := e.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := e.store.Deactivate(ctx, id); err != nil {
		return err
	}
	e.loader.Recompute(ctx, existing.SchoolYear)
	return nil
}

// HardDelete removes the row permanently.
func (e *Editor) HardDelete(ctx context.Context, id string) error {
	lock := e.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	existing, err := e.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	e.loader.Recompute(ctx, existing.SchoolYear)
	return nil
}

func payloadToSession(payload models.SessionPayload) *models.Session {
	return &models.Session{
		ClassID:     &payload.ClassID,
		SubjectID:   &payload.SubjectID,
		TeacherID:   &payload.TeacherID,
		RoomID:      &payload.RoomID,
		DayOfWeek:   payload.DayOfWeek,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		SchoolYear:  payload.SchoolYear,
		ClassName:   payload.ClassName,
		SubjectName: payload.SubjectName,
		TeacherName: payload.TeacherName,
	}
}
