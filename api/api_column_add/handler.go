package api_column_add

import (
	"fmt"
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// ColumnAdd handles ALTER TABLE ... ADD COLUMN requests
type ColumnAdd struct {
	deps types.Deps
}

// New creates a new ColumnAdd handler
func New(deps types.Deps) *ColumnAdd {
	return &ColumnAdd{deps: deps}
}

// Request is the JSON body of an add column request
type Request struct {
	TableName string           `json:"tableName"`
	Column    *sqlbuild.Column `json:"column"`
}

// Handle appends one column to an existing table.
func (ca *ColumnAdd) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Column == nil {
		respond.Error(w, http.StatusInternalServerError, "column is required")
		return
	}

	if err := ca.deps.Guard.Identifiers(req.TableName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := ca.deps.Guard.Column(*req.Column); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.AddColumn(req.TableName, *req.Column)
	if _, err := ca.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, ca.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, ca.deps.Logger, stmt)

	respond.Success(w, fmt.Sprintf("Column %s added successfully", req.Column.Name))
}
