package ports

import (
	"context"

	"github.com/dracory/sqlgateway/shared/executor"
)

// Executor is the statement surface the endpoint handlers call without
// depending on how the pool was opened.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) (executor.Result, error)
	Query(ctx context.Context, query string, args ...any) ([]executor.Row, error)
	// Tables and Describe hide the dialect differences of introspection
	Tables(ctx context.Context) ([]string, error)
	Describe(ctx context.Context, table string) ([]executor.Row, error)
	Ping(ctx context.Context) error
	Dialect() string
}

var _ Executor = (*executor.Executor)(nil)
