package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"sms-timetable/app/models"
)

// Connect opens the Postgres pool and verifies the connection before the
// server starts taking requests.
func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("Database connected successfully")
	return db, nil
}

// storeErr folds driver/connection failures into the store-unavailable
// sentinel while letting not-found pass through untouched.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return models.ErrNotFound
	}
	return fmt.Errorf("%s: %w: %v", op, models.ErrStoreUnavailable, err)
}
