package api_row_update

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// RowUpdate handles UPDATE requests
type RowUpdate struct {
	deps types.Deps
}

// New creates a new RowUpdate handler
func New(deps types.Deps) *RowUpdate {
	return &RowUpdate{deps: deps}
}

// Request is the JSON body of an update request
type Request struct {
	TableName string           `json:"tableName"`
	Data      *jsonutil.Object `json:"data"`
	Where     *jsonutil.Object `json:"where"`
}

// Response reports how many rows the statement touched
type Response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// Handle updates the rows matching every where pair.
func (ru *RowUpdate) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Data == nil {
		respond.Error(w, http.StatusInternalServerError, "data is required")
		return
	}
	if req.Where == nil {
		respond.Error(w, http.StatusInternalServerError, "where is required")
		return
	}

	setCols, setVals, err := req.Data.Split()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	whereCols, whereVals, err := req.Where.Split()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	names := append([]string{req.TableName}, setCols...)
	if err := ru.deps.Guard.Identifiers(append(names, whereCols...)...); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt, args := sqlbuild.Update(req.TableName, setCols, setVals, whereCols, whereVals)
	result, err := ru.deps.Exec.Exec(r.Context(), stmt, args...)
	if err != nil {
		respond.StatementError(w, r, ru.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, ru.deps.Logger, stmt)

	respond.JSON(w, http.StatusOK, Response{
		Success:      true,
		Message:      "Data updated successfully",
		AffectedRows: result.RowsAffected,
	})
}
