package api_table_create

import (
	"fmt"
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// TableCreate handles CREATE TABLE requests
type TableCreate struct {
	deps types.Deps
}

// New creates a new TableCreate handler
func New(deps types.Deps) *TableCreate {
	return &TableCreate{deps: deps}
}

// Request is the JSON body of a table creation request
type Request struct {
	TableName string            `json:"tableName"`
	Columns   []sqlbuild.Column `json:"columns"`
}

// Handle validates, builds SQL, and executes on the shared pool.
func (tc *TableCreate) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.TableName == "" || len(req.Columns) == 0 {
		respond.Error(w, http.StatusBadRequest, "Table name and columns are required")
		return
	}

	if err := tc.deps.Guard.Identifiers(req.TableName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := tc.deps.Guard.Columns(req.Columns); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.CreateTable(req.TableName, req.Columns)
	if _, err := tc.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, tc.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, tc.deps.Logger, stmt)

	respond.Success(w, fmt.Sprintf("Table %s created successfully", req.TableName))
}
