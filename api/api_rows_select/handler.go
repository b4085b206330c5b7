package api_rows_select

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/executor"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// RowsSelect handles SELECT * requests
type RowsSelect struct {
	deps types.Deps
}

// New creates a new RowsSelect handler
func New(deps types.Deps) *RowsSelect {
	return &RowsSelect{deps: deps}
}

// Response carries every row of the table
type Response struct {
	Success bool           `json:"success"`
	Data    []executor.Row `json:"data"`
}

// Handle returns all rows of the table named in the path. There is no
// filtering or paging.
func (rs *RowsSelect) Handle(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue(constants.PathParamTable)

	if err := rs.deps.Guard.Identifiers(table); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.SelectAll(table)
	rows, err := rs.deps.Exec.Query(r.Context(), stmt)
	if err != nil {
		respond.StatementError(w, r, rs.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, rs.deps.Logger, stmt)

	respond.JSON(w, http.StatusOK, Response{Success: true, Data: rows})
}
