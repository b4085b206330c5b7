// Package testhelpers builds SQLite backed gateway dependencies for tests.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dracory/sqlgateway/internal/ports"
	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/driver"
	"github.com/dracory/sqlgateway/shared/executor"
	"github.com/dracory/sqlgateway/shared/sqlguard"
	"github.com/dracory/sqlgateway/shared/types"
)

// NewSQLiteExecutor opens a pool on a fresh SQLite file that is removed with the test.
func NewSQLiteExecutor(t *testing.T) *executor.Executor {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gateway.db")
	db, err := driver.Open(constants.DriverSQLite, path, driver.PoolConfig{MaxOpenConns: 1})
	require.NoError(t, err, "failed to open SQLite database")

	exec, err := executor.New(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = exec.Close() })
	return exec
}

// NewDeps returns handler dependencies on a fresh SQLite database.
func NewDeps(t *testing.T, guard bool) types.Deps {
	t.Helper()
	return types.Deps{
		Exec:   NewSQLiteExecutor(t),
		Guard:  sqlguard.New(guard),
		Logger: zap.NewNop(),
	}
}

// MustExec runs setup statements and fails the test on error.
func MustExec(t *testing.T, exec ports.Executor, statements ...string) {
	t.Helper()
	for _, s := range statements {
		_, err := exec.Exec(t.Context(), s)
		require.NoError(t, err, "setup statement failed: %s", s)
	}
}

// Request describes a call made directly against a handler func.
type Request struct {
	Method     string
	Target     string
	Body       string
	PathValues map[string]string
}

// Serve calls h and decodes the JSON response body.
func Serve(t *testing.T, h http.HandlerFunc, r Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(r.Method, r.Target, strings.NewReader(r.Body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range r.PathValues {
		req.SetPathValue(k, v)
	}

	w := httptest.NewRecorder()
	h(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response is not JSON: %s", w.Body.String())
	return w, body
}
