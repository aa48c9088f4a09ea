// Package sqlite implementa los repositorios sobre SQLite (driver modernc,
// sin cgo). Pensado para instalaciones de una sola instancia: el archivo se
// crea solo y el esquema se bootstrapea al abrir.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Open abre (y crea si hace falta) la base SQLite en path, con WAL y
// foreign keys activos, y garantiza el esquema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	dsn := "file:" + path + "?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite escribe de a uno; más conexiones solo suman SQLITE_BUSY
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS pets (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	breed      TEXT,
	age        INTEGER,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS routine_templates (
	id         TEXT PRIMARY KEY,
	pet_id     TEXT NOT NULL REFERENCES pets(id),
	period     TEXT NOT NULL,
	task       TEXT NOT NULL,
	is_active  INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS routine_items (
	id           TEXT PRIMARY KEY,
	pet_id       TEXT NOT NULL REFERENCES pets(id),
	template_id  TEXT,
	period       TEXT NOT NULL,
	task         TEXT NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0,
	completed_at TIMESTAMP,
	date         TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_routine_items_pet_date ON routine_items(pet_id, date);

CREATE TABLE IF NOT EXISTS glucose_readings (
	id           TEXT PRIMARY KEY,
	pet_id       TEXT NOT NULL REFERENCES pets(id),
	value        REAL NOT NULL,
	time_of_day  TEXT NOT NULL,
	protocol     TEXT,
	notes        TEXT,
	insulin_dose REAL,
	date         TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS mood_entries (
	id           TEXT PRIMARY KEY,
	pet_id       TEXT NOT NULL REFERENCES pets(id),
	energy_level TEXT NOT NULL,
	general_mood TEXT,
	appetite     TEXT NOT NULL,
	walk         TEXT NOT NULL,
	notes        TEXT,
	date         TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS walk_entries (
	id                  TEXT PRIMARY KEY,
	pet_id              TEXT NOT NULL REFERENCES pets(id),
	date                TEXT NOT NULL,
	start_time          TIMESTAMP NOT NULL,
	end_time            TIMESTAMP,
	duration_seconds    INTEGER,
	pause_events        TEXT,
	energy_level        TEXT,
	behavior            TEXT,
	completed_route     INTEGER,
	pee_count           TEXT,
	pee_volume          TEXT,
	pee_color           TEXT,
	poop_made           INTEGER,
	poop_consistency    TEXT,
	poop_blood          INTEGER,
	poop_mucus          INTEGER,
	poop_color          TEXT,
	photos              TEXT,
	weather             TEXT,
	temperature_celsius REAL,
	route_distance_km   REAL,
	route_description   TEXT,
	mobility_notes      TEXT,
	disorientation      INTEGER,
	excessive_panting   INTEGER,
	cough               INTEGER,
	notes               TEXT,
	alerts              TEXT,
	created_at          TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_walk_entries_pet_start ON walk_entries(pet_id, start_time);
`
