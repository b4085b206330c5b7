package api_row_delete

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// RowDelete handles DELETE requests
type RowDelete struct {
	deps types.Deps
}

// New creates a new RowDelete handler
func New(deps types.Deps) *RowDelete {
	return &RowDelete{deps: deps}
}

// Request is the JSON body of a delete request
type Request struct {
	TableName string           `json:"tableName"`
	Where     *jsonutil.Object `json:"where"`
}

// Response reports how many rows were removed
type Response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// Handle deletes the rows matching every where pair.
func (rd *RowDelete) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Where == nil {
		respond.Error(w, http.StatusInternalServerError, "where is required")
		return
	}

	whereCols, whereVals, err := req.Where.Split()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := rd.deps.Guard.Identifiers(append([]string{req.TableName}, whereCols...)...); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt, args := sqlbuild.Delete(req.TableName, whereCols, whereVals)
	result, err := rd.deps.Exec.Exec(r.Context(), stmt, args...)
	if err != nil {
		respond.StatementError(w, r, rd.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, rd.deps.Logger, stmt)

	respond.JSON(w, http.StatusOK, Response{
		Success:      true,
		Message:      "Data deleted successfully",
		AffectedRows: result.RowsAffected,
	})
}
