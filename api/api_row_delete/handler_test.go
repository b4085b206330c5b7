package api_row_delete_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dracory/sqlgateway/api/api_row_delete"
	"github.com/dracory/sqlgateway/shared/testhelpers"
)

func TestRowDelete_Handle(t *testing.T) {
	t.Run("deletes matching rows", func(t *testing.T) {
		deps := testhelpers.NewDeps(t, false)
		testhelpers.MustExec(t, deps.Exec,
			"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)",
			"INSERT INTO users (id, name) VALUES (1, 'Ann'), (2, 'Bob')",
		)
		handler := api_row_delete.New(deps)

		w, body := testhelpers.Serve(t, handler.Handle, testhelpers.Request{
			Method: http.MethodDelete,
			Target: "/api/data/delete",
			Body:   `{"tableName":"users","where":{"id":1}}`,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Data deleted successfully", body["message"])
		assert.Equal(t, float64(1), body["affectedRows"])

		rows, err := deps.Exec.Query(t.Context(), "SELECT id FROM users")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		id, _ := rows[0].Get("id")
		assert.Equal(t, int64(2), id)
	})

	t.Run("missing where object", func(t *testing.T) {
		handler := api_row_delete.New(testhelpers.NewDeps(t, false))

		w, body := testhelpers.Serve(t, handler.Handle, testhelpers.Request{
			Method: http.MethodDelete,
			Target: "/api/data/delete",
			Body:   `{"tableName":"users"}`,
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "where is required", body["error"])
	})

	t.Run("empty where deletes nothing", func(t *testing.T) {
		deps := testhelpers.NewDeps(t, false)
		testhelpers.MustExec(t, deps.Exec,
			"CREATE TABLE users (id INTEGER PRIMARY KEY)",
			"INSERT INTO users (id) VALUES (1)",
		)
		handler := api_row_delete.New(deps)

		w, body := testhelpers.Serve(t, handler.Handle, testhelpers.Request{
			Method: http.MethodDelete,
			Target: "/api/data/delete",
			Body:   `{"tableName":"users","where":{}}`,
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotEmpty(t, body["error"])

		rows, err := deps.Exec.Query(t.Context(), "SELECT id FROM users")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("guard rejects where keys", func(t *testing.T) {
		handler := api_row_delete.New(testhelpers.NewDeps(t, true))

		w, body := testhelpers.Serve(t, handler.Handle, testhelpers.Request{
			Method: http.MethodDelete,
			Target: "/api/data/delete",
			Body:   `{"tableName":"users","where":{"1=1 OR id":1}}`,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body["error"], "invalid identifier")
	})
}
