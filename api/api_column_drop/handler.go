package api_column_drop

import (
	"fmt"
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// ColumnDrop handles ALTER TABLE ... DROP COLUMN requests
type ColumnDrop struct {
	deps types.Deps
}

// New creates a new ColumnDrop handler
func New(deps types.Deps) *ColumnDrop {
	return &ColumnDrop{deps: deps}
}

// Request is the JSON body of a drop column request
type Request struct {
	TableName  string `json:"tableName"`
	ColumnName string `json:"columnName"`
}

// Handle removes one column from a table.
func (cd *ColumnDrop) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := cd.deps.Guard.Identifiers(req.TableName, req.ColumnName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.DropColumn(req.TableName, req.ColumnName)
	if _, err := cd.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, cd.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, cd.deps.Logger, stmt)

	respond.Success(w, fmt.Sprintf("Column %s dropped successfully", req.ColumnName))
}
