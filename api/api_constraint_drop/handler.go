package api_constraint_drop

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// ConstraintDrop handles constraint removal
type ConstraintDrop struct {
	deps types.Deps
}

// New creates a new ConstraintDrop handler
func New(deps types.Deps) *ConstraintDrop {
	return &ConstraintDrop{deps: deps}
}

// Request is the JSON body of a drop constraint request
type Request struct {
	TableName      string `json:"tableName"`
	ConstraintName string `json:"constraintName"`
	ConstraintType string `json:"constraintType"`
}

// Handle drops a primary key, a foreign key, or an index. Any type other than
// "PRIMARY KEY" or "FOREIGN KEY" is treated as an index name.
func (cd *ConstraintDrop) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := cd.deps.Guard.Identifiers(req.TableName, req.ConstraintName); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := sqlbuild.DropConstraint(req.TableName, req.ConstraintName, req.ConstraintType)
	if _, err := cd.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, cd.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, cd.deps.Logger, stmt)

	respond.Success(w, "Constraint dropped successfully")
}
