package api_rows_select_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dracory/sqlgateway/api/api_rows_select"
	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/testhelpers"
)

func TestRowsSelect_Handle(t *testing.T) {
	t.Run("returns every row", func(t *testing.T) {
		deps := testhelpers.NewDeps(t, false)
		testhelpers.MustExec(t, deps.Exec,
			"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, score REAL)",
			"INSERT INTO users (id, name, score) VALUES (1, 'Ann', 9.5), (2, 'Bob', NULL)",
		)
		handler := api_rows_select.New(deps)

		w, body := testhelpers.Serve(t, handler.Handle, testhelpers.Request{
			Method:     http.MethodGet,
			Target:     "/api/data/select/users",
			PathValues: map[string]string{constants.PathParamTable: "users"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])

		data, ok := body["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 2)
		assert.Equal(t, map[string]any{"id": float64(1), "name": "Ann", "score": 9.5}, data[0])
		assert.Equal(t, map[string]any{"id": float64(2), "name": "Bob", "score": nil}, data[1])
	})

	t.Run("columns keep their table order", func(t *testing.T) {
		deps := testhelpers.NewDeps(t, false)
		testhelpers.MustExec(t, deps.Exec,
			"CREATE TABLE t (zeta INTEGER, alpha INTEGER, mid INTEGER)",
			"INSERT INTO t VALUES (1, 2, 3)",
		)
		handler := api_rows_select.New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/data/select/t", nil)
		req.SetPathValue(constants.PathParamTable, "t")
		w := httptest.NewRecorder()
		handler.Handle(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[{"zeta":1,"alpha":2,"mid":3}]}`, w.Body.String())
		assert.Contains(t, w.Body.String(), `{"zeta":1,"alpha":2,"mid":3}`)
	})

	t.Run("empty table yields an empty array", func(t *testing.T) {
		deps := testhelpers.NewDeps(t, false)
		testhelpers.MustExec(t, deps.Exec, "CREATE TABLE empty (id INTEGER)")
		handler := api_rows_select.New(deps)

		req := httptest.NewRequest(http.MethodGet, "/api/data/select/empty", nil)
		req.SetPathValue(constants.PathParamTable, "empty")
		w := httptest.NewRecorder()
		handler.Handle(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("unknown table", func(t *testing.T) {
		handler := api_rows_select.New(testhelpers.NewDeps(t, false))

		w, body := testhelpers.Serve(t, handler.Handle, testhelpers.Request{
			Method:     http.MethodGet,
			Target:     "/api/data/select/nope",
			PathValues: map[string]string{constants.PathParamTable: "nope"},
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, body["error"], "no such table")
	})
}
