package constants

// Route patterns for the gateway router. Path wildcards use http.ServeMux syntax.
const (
	RouteTableCreate  = "POST /api/table/create"
	RouteColumnAdd    = "POST /api/table/alter/add-column"
	RouteColumnDrop   = "POST /api/table/alter/drop-column"
	RouteColumnModify = "POST /api/table/alter/modify-column"
	RouteTableDrop    = "DELETE /api/table/drop/{tableName}"

	RouteRowInsert  = "POST /api/data/insert"
	RouteRowUpdate  = "PUT /api/data/update"
	RouteRowDelete  = "DELETE /api/data/delete"
	RouteRowsSelect = "GET /api/data/select/{tableName}"

	RouteConstraintPrimaryKey = "POST /api/constraint/add/primary-key"
	RouteConstraintForeignKey = "POST /api/constraint/add/foreign-key"
	RouteConstraintUnique     = "POST /api/constraint/add/unique"
	RouteConstraintDrop       = "DELETE /api/constraint/drop"

	RouteTablesList     = "GET /api/tables"
	RouteTableStructure = "GET /api/table/structure/{tableName}"

	RouteHealthz = "GET /healthz"
	RouteReadyz  = "GET /readyz"
)

// PathParamTable is the wildcard name used by routes that take the table from the path.
const PathParamTable = "tableName"

// Supported database drivers
const (
	DriverMySQL     = "mysql"
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverSQLServer = "sqlserver"
)

// Constraint types understood by the drop constraint endpoint.
const (
	ConstraintPrimaryKey = "PRIMARY KEY"
	ConstraintForeignKey = "FOREIGN KEY"
	ConstraintUnique     = "UNIQUE"
)
