// Package executor runs gateway statements on the single shared connection pool.
//
// Driver errors are returned unwrapped so their text can be forwarded to the
// client as is.
package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gorm.io/gorm"

	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/driver"
)

// Row is one result row, keyed by column name in result column order.
type Row = *orderedmap.OrderedMap[string, any]

// Result carries what an Exec reports back.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Executor wraps the pool that GORM opened. Statements go through sqlx; GORM
// is kept for dialect-independent schema introspection.
type Executor struct {
	orm     *gorm.DB
	db      *sqlx.DB
	dialect string
}

// New wraps an opened GORM DB.
func New(orm *gorm.DB) (*Executor, error) {
	if orm == nil {
		return nil, errors.New("executor: nil database")
	}
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	dialect := driver.Normalize(orm.Dialector.Name())
	return &Executor{
		orm:     orm,
		db:      sqlx.NewDb(sqlDB, sqlxDriverName(dialect)),
		dialect: dialect,
	}, nil
}

// Dialect returns the normalized driver name of the pool.
func (e *Executor) Dialect() string {
	return e.dialect
}

// Exec runs a statement that returns no rows.
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := e.db.ExecContext(ctx, e.rebind(query, args), args...)
	if err != nil {
		return Result{}, err
	}

	var out Result
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	if n, err := res.RowsAffected(); err == nil {
		out.RowsAffected = n
	}
	return out, nil
}

// Query runs a statement and returns every row. The result is never nil.
func (e *Executor) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := e.db.QueryxContext(ctx, e.rebind(query, args), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := []Row{}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		row := orderedmap.New[string, any]()
		for i, col := range cols {
			row.Set(col, normalizeValue(colTypes[i].DatabaseTypeName(), vals[i]))
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping verifies a connection can be taken from the pool.
func (e *Executor) Ping(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

// Close closes the pool.
func (e *Executor) Close() error {
	return e.db.Close()
}

// rebind converts ? placeholders for dialects that number their parameters.
func (e *Executor) rebind(query string, args []any) string {
	if len(args) == 0 {
		return query
	}
	return e.db.Rebind(query)
}

func sqlxDriverName(dialect string) string {
	switch dialect {
	case constants.DriverPostgres:
		return "pgx"
	case constants.DriverSQLite:
		return "sqlite3"
	default:
		return dialect
	}
}
