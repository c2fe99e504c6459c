package migrator

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

// Migrator applies the schema migrations at startup. Running it against an
// already-initialized store is a no-op: goose tracks applied versions and
// the DDL itself uses IF NOT EXISTS guards.
type Migrator struct {
	db            *sql.DB
	migrationsDir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: migrationsDir,
	}
}

func (m *Migrator) Up() error {
	if err := goose.Up(m.db, m.migrationsDir); err != nil {
		return err
	}
	return nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
