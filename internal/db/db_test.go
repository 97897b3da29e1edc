package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaVersion(t *testing.T, database *sql.DB) int {
	t.Helper()
	var v int
	require.NoError(t, database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v))
	return v
}

func TestOpen_FreshInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "guild.db")

	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()

	assert.Equal(t, len(migrations), schemaVersion(t, database))
	_, err = database.Exec("INSERT INTO saves (slot, version, payload, saved_at) VALUES ('default', '1.0.0', '{}', 1)")
	assert.NoError(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guild.db")

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Exec("INSERT INTO saves (version, payload, saved_at) VALUES ('1.0.0', '{}', 1)")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM saves").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestInitSchema_MigratesUnversionedSaves(t *testing.T) {
	database, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer database.Close()
	database.SetMaxOpenConns(1)

	tx, err := database.Begin()
	require.NoError(t, err)
	require.NoError(t, migrationV1(tx))
	require.NoError(t, tx.Commit())
	_, err = database.Exec("INSERT INTO saves (version, payload, saved_at) VALUES ('1.0.0', '{}', 1)")
	require.NoError(t, err)

	require.NoError(t, InitSchema(database))

	assert.Equal(t, len(migrations), schemaVersion(t, database))
	var slot string
	require.NoError(t, database.QueryRow("SELECT slot FROM saves").Scan(&slot))
	assert.Equal(t, "default", slot)
}
