package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createRoomsTable(db); err != nil {
		return err
	}
	if err := createSessionsTable(db); err != nil {
		return err
	}
	if err := createSessionIndexes(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createRoomsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS rooms (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			capacity INTEGER NOT NULL DEFAULT 0,
			type VARCHAR(50) NOT NULL DEFAULT '',
			equipment TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create rooms table: %v", err)
		return err
	}
	return nil
}

func createSessionsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			id VARCHAR(64) PRIMARY KEY,
			class_id VARCHAR(64),
			subject_id VARCHAR(64),
			teacher_id VARCHAR(64),
			room_id VARCHAR(64),
			day_of_week INTEGER NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			school_year VARCHAR(9) NOT NULL,
			class_name VARCHAR(100) NOT NULL DEFAULT '',
			subject_name VARCHAR(100) NOT NULL DEFAULT '',
			teacher_name VARCHAR(100) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to create sessions table: %v", err)
		return err
	}
	return nil
}

func createSessionIndexes(db *sql.DB) error {
	queries := []string{
		`CREATE INDEX IF NOT EXISTS idx_sessions_year ON sessions (school_year) WHERE is_active`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_class ON sessions (class_id, school_year) WHERE is_active`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_teacher ON sessions (teacher_id, school_year) WHERE is_active`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_room ON sessions (room_id) WHERE is_active`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create session index: %v", err)
			return err
		}
	}
	return nil
}
