package api_constraint_add

import (
	"net/http"

	"github.com/dracory/sqlgateway/shared/jsonutil"
	"github.com/dracory/sqlgateway/shared/respond"
	"github.com/dracory/sqlgateway/shared/sqlbuild"
	"github.com/dracory/sqlgateway/shared/types"
)

// ConstraintAdd handles ALTER TABLE ... ADD CONSTRAINT requests for primary
// keys, foreign keys and unique constraints
type ConstraintAdd struct {
	deps types.Deps
}

// New creates a new ConstraintAdd handler
func New(deps types.Deps) *ConstraintAdd {
	return &ConstraintAdd{deps: deps}
}

// Request is the JSON body shared by the three constraint endpoints.
// RefTable and RefColumn are only read for foreign keys.
type Request struct {
	TableName      string `json:"tableName"`
	ColumnName     string `json:"columnName"`
	ConstraintName string `json:"constraintName"`
	RefTable       string `json:"refTable"`
	RefColumn      string `json:"refColumn"`
}

// HandlePrimaryKey adds a named PRIMARY KEY on one column.
func (ca *ConstraintAdd) HandlePrimaryKey(w http.ResponseWriter, r *http.Request) {
	ca.handle(w, r, "Primary key constraint added successfully", func(req Request) string {
		return sqlbuild.AddPrimaryKey(req.TableName, req.ConstraintName, req.ColumnName)
	})
}

// HandleForeignKey adds a named FOREIGN KEY referencing refTable(refColumn).
func (ca *ConstraintAdd) HandleForeignKey(w http.ResponseWriter, r *http.Request) {
	ca.handle(w, r, "Foreign key constraint added successfully", func(req Request) string {
		return sqlbuild.AddForeignKey(req.TableName, req.ConstraintName, req.ColumnName, req.RefTable, req.RefColumn)
	})
}

// HandleUnique adds a named UNIQUE constraint on one column.
func (ca *ConstraintAdd) HandleUnique(w http.ResponseWriter, r *http.Request) {
	ca.handle(w, r, "Unique constraint added successfully", func(req Request) string {
		return sqlbuild.AddUnique(req.TableName, req.ConstraintName, req.ColumnName)
	})
}

func (ca *ConstraintAdd) handle(w http.ResponseWriter, r *http.Request, message string, build func(Request) string) {
	var req Request
	if err := jsonutil.DecodeBody(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := ca.deps.Guard.Identifiers(req.TableName, req.ColumnName, req.ConstraintName, req.RefTable, req.RefColumn); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt := build(req)
	if _, err := ca.deps.Exec.Exec(r.Context(), stmt); err != nil {
		respond.StatementError(w, r, ca.deps.Logger, stmt, err)
		return
	}
	respond.Executed(r, ca.deps.Logger, stmt)

	respond.Success(w, message)
}
