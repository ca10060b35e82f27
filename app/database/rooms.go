package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sms-timetable/app/models"
)

// RoomDB is the Postgres-backed room registry.
type RoomDB struct {
	DB *sql.DB
}

func NewRoomDB(db *sql.DB) *RoomDB {
	return &RoomDB{DB: db}
}

const roomColumns = `id, name, capacity, type, equipment, available, created_at, updated_at`

func scanRoom(row interface{ Scan(...interface{}) error }) (*models.Room, error) {
	var r models.Room
	err := row.Scan(&r.ID, &r.Name, &r.Capacity, &r.Type, &r.Equipment,
		&r.Available, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns rooms matching the given filters, name-ordered.
func (store *RoomDB) List(ctx context.Context, filters models.RoomFilters) ([]models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	args := []interface{}{}

	if filters.Type != "" {
		args = append(args, filters.Type)
		query += ` AND type = $1`
	}
	if filters.Available != nil {
		args = append(args, *filters.Available)
		if len(args) == 1 {
			query += ` AND available = $1`
		} else {
			query += ` AND available = $2`
		}
	}
	query += ` ORDER BY name`

	rows, err := store.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list rooms", err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, storeErr("scan room", err)
		}
		rooms = append(rooms, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list rooms", err)
	}
	return rooms, nil
}

// Get fetches one room by id.
func (store *RoomDB) Get(ctx context.Context, id string) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	r, err := scanRoom(store.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, storeErr("get room", err)
	}
	return r, nil
}

// Create persists a new room and assigns its id.
func (store *RoomDB) Create(ctx context.Context, r *models.Room) error {
	r.ID = uuid.New().String()
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	query := `INSERT INTO rooms (id, name, capacity, type, equipment, available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	_, err := store.DB.ExecContext(ctx, query,
		r.ID, r.Name, r.Capacity, r.Type, r.Equipment, r.Available, now)
	if err != nil {
		return storeErr("create room", err)
	}
	return nil
}

// Update overwrites a room's fields.
func (store *RoomDB) Update(ctx context.Context, r *models.Room) error {
	query := `UPDATE rooms SET name = $1, capacity = $2, type = $3, equipment = $4,
				  available = $5, updated_at = NOW()
			  WHERE id = $6`
	result, err := store.DB.ExecContext(ctx, query,
		r.Name, r.Capacity, r.Type, r.Equipment, r.Available, r.ID)
	if err != nil {
		return storeErr("update room", err)
	}
	return requireRow(result)
}

// Delete removes a room permanently. Session room references are weak:
// sessions pointing at a deleted room keep the stale id and simply lose
// their room name at load time.
func (store *RoomDB) Delete(ctx context.Context, id string) error {
	result, err := store.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete room", err)
	}
	return requireRow(result)
}
