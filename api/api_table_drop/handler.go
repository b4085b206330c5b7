package api_table_drop

import (
	"fmt"
	"net/http"

	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// TableDrop handles DROP TABLE requests
type TableDrop struct {
	deps types.Deps
}

// New creates a new TableDrop handler
func New(deps types.Deps) *TableDrop {
	return &TableDrop{deps: deps}
}

// Handle drops the table named in the path.
func (td *TableDrop) Handle(w http.ResponseWriter, r *http.Request) {
	table := r.PathValue(constants.PathParamTable)

	if err := td.deps.Guard.Identifiers(table); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.DropTable(table)
	if _, err := td.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, td.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, td.deps.Logger, stmt)

	respond.Success(w, fmt.Sprintf("Table %s dropped successfully", table))
}
