package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sms-timetable/app/models"
)

// SessionDB is the Postgres-backed session store.
type SessionDB struct {
	DB *sql.DB
}

func NewSessionDB(db *sql.DB) *SessionDB {
	return &SessionDB{DB: db}
}

const sessionColumns = `
	s.id, s.class_id, s.subject_id, s.teacher_id, s.room_id,
	s.day_of_week, s.start_time, s.end_time, s.school_year,
	COALESCE(s.class_name, ''), COALESCE(s.subject_name, ''), COALESCE(s.teacher_name, ''),
	COALESCE(r.name, ''),
	s.is_active, s.created_at, s.updated_at`

const sessionFrom = ` FROM sessions s LEFT JOIN rooms r ON s.room_id = r.id `

// scanSession is the single mapping point from a store row to the canonical
// Session shape; everything downstream (detector, projector, handlers) only
// ever sees its output.
func scanSession(row interface{ Scan(...interface{}) error }) (*models.Session, error) {
	var (
		s                                      models.Session
		classID, subjectID, teacherID, roomID  sql.NullString
	)
	err := row.Scan(
		&s.ID, &classID, &subjectID, &teacherID, &roomID,
		&s.DayOfWeek, &s.StartTime, &s.EndTime, &s.SchoolYear,
		&s.ClassName, &s.SubjectName, &s.TeacherName,
		&s.RoomName,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.ClassID = nullableID(classID)
	s.SubjectID = nullableID(subjectID)
	s.TeacherID = nullableID(teacherID)
	s.RoomID = nullableID(roomID)
	return &s, nil
}

func nullableID(v sql.NullString) *string {
	if !v.Valid || v.String == "" {
		return nil
	}
	id := v.String
	return &id
}

func (store *SessionDB) list(ctx context.Context, where string, args ...interface{}) ([]models.Session, error) {
	query := `SELECT` + sessionColumns + sessionFrom + where + ` ORDER BY s.day_of_week, s.start_time, s.created_at`

	rows, err := store.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list sessions", err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, storeErr("scan session", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list sessions", err)
	}
	return sessions, nil
}

// ListByYear returns every active session of a school year.
func (store *SessionDB) ListByYear(ctx context.Context, schoolYear string) ([]models.Session, error) {
	return store.list(ctx, `WHERE s.is_active = true AND s.school_year = $1`, schoolYear)
}

// ListByClass returns the active sessions of one class for a school year.
func (store *SessionDB) ListByClass(ctx context.Context, classID, schoolYear string) ([]models.Session, error) {
	return store.list(ctx, `WHERE s.is_active = true AND s.class_id = $1 AND s.school_year = $2`, classID, schoolYear)
}

// ListByTeacher returns the active sessions of one teacher for a school year.
func (store *SessionDB) ListByTeacher(ctx context.Context, teacherID, schoolYear string) ([]models.Session, error) {
	return store.list(ctx, `WHERE s.is_active = true AND s.teacher_id = $1 AND s.school_year = $2`, teacherID, schoolYear)
}

// ListByRoom returns the active sessions held in one room.
func (store *SessionDB) ListByRoom(ctx context.Context, roomID string) ([]models.Session, error) {
	return store.list(ctx, `WHERE s.is_active = true AND s.room_id = $1`, roomID)
}

// ListByDay returns the active sessions of one weekday for a school year.
func (store *SessionDB) ListByDay(ctx context.Context, dayOfWeek int, schoolYear string) ([]models.Session, error) {
	return store.list(ctx, `WHERE s.is_active = true AND s.day_of_week = $1 AND s.school_year = $2`, dayOfWeek, schoolYear)
}

// Get fetches one session by id regardless of its active flag.
func (store *SessionDB) Get(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT` + sessionColumns + sessionFrom + `WHERE s.id = $1`
	s, err := scanSession(store.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, storeErr("get session", err)
	}
	return s, nil
}

// Create persists a new session and assigns its id.
func (store *SessionDB) Create(ctx context.Context, s *models.Session) error {
	s.ID = uuid.New().String()
	s.IsActive = true
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `INSERT INTO sessions (id, class_id, subject_id, teacher_id, room_id, day_of_week,
				start_time, end_time, school_year, class_name, subject_name, teacher_name,
				is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true, $13, $13)`

	_, err := store.DB.ExecContext(ctx, query,
		s.ID, s.ClassID, s.SubjectID, s.TeacherID, s.RoomID, s.DayOfWeek,
		s.StartTime, s.EndTime, s.SchoolYear, s.ClassName, s.SubjectName, s.TeacherName, now)
	if err != nil {
		return storeErr("create session", err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing session.
func (store *SessionDB) Update(ctx context.Context, s *models.Session) error {
	query := `UPDATE sessions
			  SET class_id = $1, subject_id = $2, teacher_id = $3, room_id = $4,
				  day_of_week = $5, start_time = $6, end_time = $7, school_year = $8,
				  class_name = $9, subject_name = $10, teacher_name = $11, updated_at = NOW()
			  WHERE id = $12`

	result, err := store.DB.ExecContext(ctx, query,
		s.ClassID, s.SubjectID, s.TeacherID, s.RoomID,
		s.DayOfWeek, s.StartTime, s.EndTime, s.SchoolYear,
		s.ClassName, s.SubjectName, s.TeacherName, s.ID)
	if err != nil {
		return storeErr("update session", err)
	}
	return requireRow(result)
}

// Deactivate soft-deletes a session; it disappears from every listing but
// stays recoverable in the store.
func (store *SessionDB) Deactivate(ctx context.Context, id string) error {
	result, err := store.DB.ExecContext(ctx,
		`UPDATE sessions SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return storeErr("deactivate session", err)
	}
	return requireRow(result)
}

// Delete removes a session row permanently.
func (store *SessionDB) Delete(ctx context.Context, id string) error {
	result, err := store.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete session", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
