package api_tables_list

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// TablesList handles table listing
type TablesList struct {
	deps types.Deps
}

// New creates a new TablesList handler
func New(deps types.Deps) *TablesList {
	return &TablesList{deps: deps}
}

// Response is the list of table names in the current database
type Response struct {
	Success bool     `json:"success"`
	Tables  []string `json:"tables"`
}

// Handle returns every table in the connected database. MySQL answers
// SHOW TABLES; other dialects are listed through the migrator.
func (h *TablesList) Handle(w http.ResponseWriter, r *http.Request) {
	tables, err := h.deps.Exec.Tables(r.Context())
	if err != nil {
		respond.StatementError(w, r, h.deps.Logger, sqlbuild.ShowTables, err)
		return
	}

	respond.JSON(w, http.StatusOK, Response{Success: true, Tables: tables})
}
