package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite telemetry database
type DB struct {
	conn *sql.DB
}

// OpenDB opens (or creates) the telemetry database
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates tables if they don't exist
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		handle TEXT NOT NULL DEFAULT '',
		detail TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ticks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fps REAL NOT NULL,
		players INTEGER NOT NULL,
		troops INTEGER NOT NULL,
		projectiles INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
	CREATE INDEX IF NOT EXISTS idx_ticks_created ON ticks(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// InsertEvents writes a batch of events in one transaction
func (db *DB) InsertEvents(events []AnalyticsEvent) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO events (type, handle, detail, created_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(e.Type, e.Handle, e.Detail, e.Timestamp); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// InsertTicks writes a batch of loop samples in one transaction
func (db *DB) InsertTicks(samples []TickSample) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO ticks (fps, players, troops, projectiles, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, s := range samples {
		if _, err := stmt.Exec(s.FPS, s.Players, s.Troops, s.Projectiles, s.Timestamp); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// CountEvents returns the number of stored events of the given type
func (db *DB) CountEvents(evtType string) (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM events WHERE type = ?", evtType).Scan(&n)
	return n, err
}

// CountTicks returns the number of stored loop samples
func (db *DB) CountTicks() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM ticks").Scan(&n)
	return n, err
}
