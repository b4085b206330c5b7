package executor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dracory/sqlgateway/shared/executor"
	"github.com/dracory/sqlgateway/shared/testhelpers"
)

func TestNew_NilDatabase(t *testing.T) {
	_, err := executor.New(nil)
	assert.Error(t, err)
}

func TestExecutor_ExecAndQuery(t *testing.T) {
	exec := testhelpers.NewSQLiteExecutor(t)
	ctx := t.Context()

	assert.Equal(t, "sqlite", exec.Dialect())
	require.NoError(t, exec.Ping(ctx))

	testhelpers.MustExec(t, exec, "CREATE TABLE users (id INTEGER PRIMARY KEY, name VARCHAR(50), score REAL)")

	res, err := exec.Exec(ctx, "INSERT INTO users (name, score) VALUES (?, ?)", "Ann", 9.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.LastInsertID)
	assert.Equal(t, int64(1), res.RowsAffected)

	_, err = exec.Exec(ctx, "INSERT INTO users (name, score) VALUES (?, ?)", "Bob", nil)
	require.NoError(t, err)

	rows, err := exec.Query(ctx, "SELECT * FROM users ORDER BY id")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var keys []string
	for pair := rows[0].Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"id", "name", "score"}, keys)

	name, _ := rows[0].Get("name")
	assert.Equal(t, "Ann", name)
	score, _ := rows[1].Get("score")
	assert.Nil(t, score)

	res, err = exec.Exec(ctx, "UPDATE users SET score = ? WHERE name = ?", 1.0, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RowsAffected)
}

func TestExecutor_QueryEmptyResultIsNotNil(t *testing.T) {
	exec := testhelpers.NewSQLiteExecutor(t)
	testhelpers.MustExec(t, exec, "CREATE TABLE empty_t (id INTEGER)")

	rows, err := exec.Query(t.Context(), "SELECT * FROM empty_t")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExecutor_DriverErrorIsReturned(t *testing.T) {
	exec := testhelpers.NewSQLiteExecutor(t)

	_, err := exec.Exec(t.Context(), "DROP TABLE missing_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
}

func TestExecutor_TablesAndDescribe(t *testing.T) {
	exec := testhelpers.NewSQLiteExecutor(t)
	ctx := t.Context()

	tables, err := exec.Tables(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tables)
	assert.Empty(t, tables)

	testhelpers.MustExec(t, exec,
		"CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, name VARCHAR(100) NOT NULL)",
		"CREATE TABLE products (id INTEGER PRIMARY KEY, price REAL)",
		"INSERT INTO users (name) VALUES ('Ann')",
	)

	tables, err = exec.Tables(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"users", "products"}, tables)

	structure, err := exec.Describe(ctx, "users")
	require.NoError(t, err)
	require.Len(t, structure, 2)

	field, _ := structure[0].Get("Field")
	assert.Equal(t, "id", field)
	field, _ = structure[1].Get("Field")
	assert.Equal(t, "name", field)

	var keys []string
	for pair := structure[0].Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"Field", "Type", "Null", "Key", "Default", "Extra"}, keys)
}

func TestExecutor_QueryFormatsTimes(t *testing.T) {
	exec := testhelpers.NewSQLiteExecutor(t)
	testhelpers.MustExec(t, exec,
		"CREATE TABLE events (id INTEGER PRIMARY KEY, happened_at DATETIME)",
		"INSERT INTO events (id, happened_at) VALUES (1, '2024-01-01 00:00:00')",
	)

	rows, err := exec.Query(t.Context(), "SELECT happened_at FROM events")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v, _ := rows[0].Get("happened_at")
	assert.Equal(t, "2024-01-01T00:00:00.000Z", v)
}
