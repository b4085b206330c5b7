// Package sqlbuild assembles the statement text for every gateway endpoint.
//
// Identifiers are spliced into the text as given; only row values travel as
// placeholder arguments. Callers that need identifier checks run the request
// through sqlguard first.
package sqlbuild

import (
	"strings"

	"github.com/dracory/sqlgateway/shared/constants"
)

// CreateTable returns CREATE TABLE <table> (<col defs>).
func CreateTable(table string, cols []Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = ColumnDef(c)
	}
	return "CREATE TABLE " + table + " (" + strings.Join(defs, ", ") + ")"
}

// AddColumn returns ALTER TABLE <table> ADD COLUMN <def>.
func AddColumn(table string, c Column) string {
	return "ALTER TABLE " + table + " ADD COLUMN " + AlterColumnDef(c)
}

// DropColumn returns ALTER TABLE <table> DROP COLUMN <column>.
func DropColumn(table, column string) string {
	return "ALTER TABLE " + table + " DROP COLUMN " + column
}

// ModifyColumn returns ALTER TABLE <table> MODIFY COLUMN <def>.
func ModifyColumn(table string, c Column) string {
	return "ALTER TABLE " + table + " MODIFY COLUMN " + AlterColumnDef(c)
}

// DropTable returns DROP TABLE <table>.
func DropTable(table string) string {
	return "DROP TABLE " + table
}

// Insert returns INSERT INTO <table> (<cols>) VALUES (?, ...) and its arguments.
func Insert(table string, cols []string, vals []any) (string, []any) {
	ph := make([]string, len(cols))
	for i := range cols {
		ph[i] = "?"
	}
	sqlStr := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(ph, ", ") + ")"
	return sqlStr, append([]any{}, vals...)
}

// Update returns UPDATE <table> SET k = ?, ... WHERE k = ? AND ... with the
// SET arguments followed by the WHERE arguments.
func Update(table string, setCols []string, setVals []any, whereCols []string, whereVals []any) (string, []any) {
	sqlStr := "UPDATE " + table + " SET " + assignments(setCols, ", ") + " WHERE " + assignments(whereCols, " AND ")
	args := make([]any, 0, len(setVals)+len(whereVals))
	args = append(args, setVals...)
	args = append(args, whereVals...)
	return sqlStr, args
}

// Delete returns DELETE FROM <table> WHERE k = ? AND ... and its arguments.
func Delete(table string, whereCols []string, whereVals []any) (string, []any) {
	return "DELETE FROM " + table + " WHERE " + assignments(whereCols, " AND "), append([]any{}, whereVals...)
}

// SelectAll returns SELECT * FROM <table>.
func SelectAll(table string) string {
	return "SELECT * FROM " + table
}

// AddPrimaryKey returns ALTER TABLE <table> ADD CONSTRAINT <name> PRIMARY KEY (<column>).
func AddPrimaryKey(table, constraint, column string) string {
	return "ALTER TABLE " + table + " ADD CONSTRAINT " + constraint + " PRIMARY KEY (" + column + ")"
}

// AddForeignKey returns ALTER TABLE <table> ADD CONSTRAINT <name>
// FOREIGN KEY (<column>) REFERENCES <refTable>(<refColumn>).
func AddForeignKey(table, constraint, column, refTable, refColumn string) string {
	return "ALTER TABLE " + table + " ADD CONSTRAINT " + constraint +
		" FOREIGN KEY (" + column + ") REFERENCES " + refTable + "(" + refColumn + ")"
}

// AddUnique returns ALTER TABLE <table> ADD CONSTRAINT <name> UNIQUE (<column>).
func AddUnique(table, constraint, column string) string {
	return "ALTER TABLE " + table + " ADD CONSTRAINT " + constraint + " UNIQUE (" + column + ")"
}

// DropConstraint picks the DROP form by constraint type. The match is exact;
// anything other than PRIMARY KEY or FOREIGN KEY drops an index.
func DropConstraint(table, constraint, constraintType string) string {
	switch constraintType {
	case constants.ConstraintPrimaryKey:
		return "ALTER TABLE " + table + " DROP PRIMARY KEY"
	case constants.ConstraintForeignKey:
		return "ALTER TABLE " + table + " DROP FOREIGN KEY " + constraint
	default:
		return "ALTER TABLE " + table + " DROP INDEX " + constraint
	}
}

// ShowTables is the MySQL table listing statement.
const ShowTables = "SHOW TABLES"

// Describe returns DESCRIBE <table>.
func Describe(table string) string {
	return "DESCRIBE " + table
}

func assignments(cols []string, sep string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " = ?"
	}
	return strings.Join(parts, sep)
}
