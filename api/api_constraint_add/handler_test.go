package api_constraint_add_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dracory/sqlgateway/api/api_constraint_add"
	"github.com/dracory/sqlgateway/shared/testhelpers"
)

// SQLite cannot add constraints to an existing table, so these cases check
// the statement that was sent and that the driver error is forwarded.
func TestConstraintAdd_Handlers(t *testing.T) {
	body := `{"tableName":"orders","columnName":"user_id","constraintName":"fk_user","refTable":"users","refColumn":"id"}`

	cases := []struct {
		name    string
		handler func(*api_constraint_add.ConstraintAdd) func(http.ResponseWriter, *http.Request)
		sql     string
	}{
		{
			name:    "primary key",
			handler: func(h *api_constraint_add.ConstraintAdd) func(http.ResponseWriter, *http.Request) { return h.HandlePrimaryKey },
			sql:     "ALTER TABLE orders ADD CONSTRAINT fk_user PRIMARY KEY (user_id)",
		},
		{
			name:    "foreign key",
			handler: func(h *api_constraint_add.ConstraintAdd) func(http.ResponseWriter, *http.Request) { return h.HandleForeignKey },
			sql:     "ALTER TABLE orders ADD CONSTRAINT fk_user FOREIGN KEY (user_id) REFERENCES users(id)",
		},
		{
			name:    "unique",
			handler: func(h *api_constraint_add.ConstraintAdd) func(http.ResponseWriter, *http.Request) { return h.HandleUnique },
			sql:     "ALTER TABLE orders ADD CONSTRAINT fk_user UNIQUE (user_id)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := testhelpers.NewDeps(t, false)
			core, logs := observer.New(zapcore.WarnLevel)
			deps.Logger = zap.New(core)
			testhelpers.MustExec(t, deps.Exec, "CREATE TABLE orders (id INTEGER, user_id INTEGER)")
			handler := api_constraint_add.New(deps)

			w, resp := testhelpers.Serve(t, tc.handler(handler), testhelpers.Request{
				Method: http.MethodPost,
				Target: "/api/constraint",
				Body:   body,
			})

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.NotEmpty(t, resp["error"])

			entries := logs.FilterMessage("statement failed").All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tc.sql, entries[0].ContextMap()["sql"])
			}
		})
	}
}

func TestConstraintAdd_Guard(t *testing.T) {
	handler := api_constraint_add.New(testhelpers.NewDeps(t, true))

	w, body := testhelpers.Serve(t, handler.HandleForeignKey, testhelpers.Request{
		Method: http.MethodPost,
		Target: "/api/constraint/foreign-key",
		Body:   `{"tableName":"orders","columnName":"user_id","constraintName":"fk","refTable":"users(id); DROP TABLE users; --","refColumn":"id"}`,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "invalid identifier")
}
