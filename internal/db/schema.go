package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs. It reflects the state
// after all migrations.
//
// This is the single source of truth for the database schema. Repository
// tests load it through GetSchemaSQL() so a column the code expects but the
// schema lacks fails at test time with "no such column".
//
// When changing the schema:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Saved game snapshots, newest last. Each row is a full JSON snapshot.
CREATE TABLE IF NOT EXISTS saves (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	slot TEXT NOT NULL DEFAULT 'default',
	version TEXT NOT NULL,
	payload TEXT NOT NULL,
	saved_at INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_saves_slot ON saves(slot, id);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates the schema on a fresh database or migrates an existing one.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	var savesCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='saves'").Scan(&savesCount)
	if err != nil {
		return err
	}
	if savesCount > 0 {
		// Saves from before versioning; migrate them forward.
		return RunMigrations(db)
	}

	// Completely fresh install - create the modern schema directly and mark
	// every migration as applied.
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

func createVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
