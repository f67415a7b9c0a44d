// Package database opens the PostgreSQL pool and keeps the schema current.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// schema contains the SQL statements to set up the database tables.
// These run on startup so a fresh database is usable immediately.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS slips (
    id UUID PRIMARY KEY,
    business_date TEXT NOT NULL,
    table_name TEXT,
    people INTEGER NOT NULL DEFAULT 0,
    amount BIGINT NOT NULL DEFAULT 0,
    payment_method TEXT NOT NULL DEFAULT 'cash',
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS food_sales (
    business_date TEXT NOT NULL,
    item_key TEXT NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (business_date, item_key)
);

CREATE TABLE IF NOT EXISTS staff_segments (
    id UUID PRIMARY KEY,
    business_date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    staff_name TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_slips_business_date ON slips(business_date);
CREATE INDEX IF NOT EXISTS idx_food_sales_business_date ON food_sales(business_date);
CREATE INDEX IF NOT EXISTS idx_staff_segments_business_date ON staff_segments(business_date);
`

// Open connects to PostgreSQL, verifies the connection and runs the
// startup migrations. The returned *sql.DB is the shared connection pool
// injected into every module repository.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
