package formats

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDB(t *testing.T, stmts ...string) string {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return dbPath
}

func TestLoadSQLite(t *testing.T) {
	dbPath := makeTestDB(t,
		`CREATE TABLE people (name TEXT, age INTEGER, nickname TEXT)`,
		`INSERT INTO people VALUES ('Alice', 30, NULL), ('Bob', 25, 'Bobby')`,
	)

	ds, err := LoadSQLite(dbPath, "SELECT name, age, nickname FROM people ORDER BY age")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "nickname"}, ds.Columns)
	assert.Equal(t, [][]string{
		{"Bob", "25", "Bobby"},
		{"Alice", "30", ""},
	}, ds.Rows)
}

func TestLoadSQLiteNoRows(t *testing.T) {
	dbPath := makeTestDB(t, `CREATE TABLE empty (a TEXT, b TEXT)`)

	ds, err := LoadSQLite(dbPath, "SELECT a, b FROM empty")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns)
	assert.Empty(t, ds.Rows)
}

func TestLoadSQLiteBadQuery(t *testing.T) {
	dbPath := makeTestDB(t)

	_, err := LoadSQLite(dbPath, "SELECT * FROM missing")
	assert.Error(t, err)
}

func TestLoadSQLiteReadOnly(t *testing.T) {
	dbPath := makeTestDB(t, `CREATE TABLE t (a TEXT)`)

	_, err := LoadSQLite(dbPath, "INSERT INTO t VALUES ('x')")
	assert.Error(t, err)
}
