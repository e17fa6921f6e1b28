package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"hr-assistant/internal/knowledge/repository"
	"hr-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS entities (
	id          TEXT PRIMARY KEY,
	type        TEXT NOT NULL,
	country_id  TEXT NOT NULL DEFAULT '',
	name        TEXT NOT NULL DEFAULT '',
	properties  TEXT NOT NULL DEFAULT '{}',
	updated_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entities_type_country ON entities(type, country_id);
`

// Open opens a SQLite database and runs migrations.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a knowledge graph repository on an opened database.
func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
