package api_row_insert

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// RowInsert handles INSERT requests
type RowInsert struct {
	deps types.Deps
}

// New creates a new RowInsert handler
func New(deps types.Deps) *RowInsert {
	return &RowInsert{deps: deps}
}

// Request is the JSON body of an insert request
type Request struct {
	TableName string           `json:"tableName"`
	Data      *jsonutil.Object `json:"data"`
}

// Response carries the generated key of the new row
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}

// Handle inserts one row; values are bound as placeholders in key order.
func (ri *RowInsert) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Data == nil {
		respond.Error(w, http.StatusInternalServerError, "data is required")
		return
	}

	cols, vals, err := req.Data.Split()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := ri.deps.Guard.Identifiers(append([]string{req.TableName}, cols...)...); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt, args := sqlbuild.Insert(req.TableName, cols, vals)
	result, err := ri.deps.Exec.Exec(r.Context(), stmt, args...)
	if err != nil {
		respond.StatementError(w, r, ri.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, ri.deps.Logger, stmt)

	respond.JSON(w, http.StatusOK, Response{
		Success:  true,
		Message:  "Data inserted successfully",
		InsertID: result.LastInsertID,
	})
}
