package api_table_structure

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/executor"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// TableStructure handles DESCRIBE requests
type TableStructure struct {
	deps types.Deps
}

// New creates a new TableStructure handler
func New(deps types.Deps) *TableStructure {
	return &TableStructure{deps: deps}
}

// Response carries one row per column, shaped like MySQL's DESCRIBE output
type Response struct {
	Success   bool           `json:"success"`
	Structure []executor.Row `json:"structure"`
}

// Handle describes the table named in the path.
func (h *TableStructure) Handle(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue(constants.PathParamTable)

	if err := h.deps.Guard.Identifiers(table); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.deps.Exec.Describe(r.Context(), table)
	if err != nil {
		respond.StatementError(w, r, h.deps.Logger, sqlbuild.Describe(table), err)
		return
	}

	respond.JSON(w, http.StatusOK, Response{Success: true, Structure: rows})
}
