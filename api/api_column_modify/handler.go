package api_column_modify

import (
	"fmt"
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// ColumnModify handles ALTER TABLE ... MODIFY COLUMN requests
type ColumnModify struct {
	deps types.Deps
}

// New creates a new ColumnModify handler
func New(deps types.Deps) *ColumnModify {
	return &ColumnModify{deps: deps}
}

// Request is the JSON body of a modify column request
type Request struct {
	TableName string           `json:"tableName"`
	Column    *sqlbuild.Column `json:"column"`
}

// Handle redefines a column. Only NOT NULL and DEFAULT are carried over from
// the column object; key and auto increment flags are ignored.
func (cm *ColumnModify) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Column == nil {
		respond.Error(w, http.StatusInternalServerError, "column is required")
		return
	}

	if err := cm.deps.Guard.Identifiers(req.TableName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := cm.deps.Guard.Column(*req.Column); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.ModifyColumn(req.TableName, *req.Column)
	if _, err := cm.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, cm.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, cm.deps.Logger, stmt)

	respond.Success(w, fmt.Sprintf("Column %s modified successfully", req.Column.Name))
}
