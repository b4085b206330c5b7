// Package sqlgateway exposes a relational database over HTTP. Every endpoint
// maps one JSON request onto exactly one SQL statement executed on a shared
// connection pool.
package sqlgateway

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/dracory/sqlgateway/api/api_column_add"
	"github.com/dracory/sqlgateway/api/api_column_drop"
	"github.com/dracory/sqlgateway/api/api_column_modify"
	"github.com/dracory/sqlgateway/api/api_constraint_add"
	"github.com/dracory/sqlgateway/api/api_constraint_drop"
	"github.com/dracory/sqlgateway/api/api_health"
	"github.com/dracory/sqlgateway/api/api_row_delete"
	"github.com/dracory/sqlgateway/api/api_row_insert"
	"github.com/dracory/sqlgateway/api/api_row_update"
	"github.com/dracory/sqlgateway/api/api_rows_select"
	"github.com/dracory/sqlgateway/api/api_table_create"
	"github.com/dracory/sqlgateway/api/api_table_drop"
	"github.com/dracory/sqlgateway/api/api_table_structure"
	"github.com/dracory/sqlgateway/api/api_tables_list"
	"github.com/dracory/sqlgateway/internal/ports"
	"github.com/dracory/sqlgateway/shared/constants"
	"github.com/dracory/sqlgateway/shared/sqlguard"
	"github.com/dracory/sqlgateway/shared/types"
)

// App represents the gateway instance
type App struct {
	config types.Config
	exec   ports.Executor
	guard  *sqlguard.Guard
	logger *zap.Logger
}

// New creates a new App on top of an opened executor.
// The configuration should be loaded using LoadConfig() from config.go
func New(cfg types.Config, exec ports.Executor, options ...Option) *App {
	app := &App{
		config: cfg,
		exec:   exec,
		guard:  sqlguard.New(cfg.SQLGuard),
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(app)
	}
	return app
}

// Config returns the configuration the App was built with
func (a *App) Config() types.Config {
	return a.config
}

// Handler returns an http.Handler that serves the API and, when present, the
// static directory
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	a.registerRoutes(mux)

	if dir := a.config.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			mux.Handle("GET /", http.FileServer(http.Dir(dir)))
		}
	}

	return a.middleware(mux)
}

func (a *App) registerRoutes(mux *http.ServeMux) {
	deps := types.Deps{Exec: a.exec, Guard: a.guard, Logger: a.logger}

	// Tables and columns
	mux.HandleFunc(constants.RouteTableCreate, api_table_create.New(deps).Handle)
	mux.HandleFunc(constants.RouteColumnAdd, api_column_add.New(deps).Handle)
	mux.HandleFunc(constants.RouteColumnDrop, api_column_drop.New(deps).Handle)
	mux.HandleFunc(constants.RouteColumnModify, api_column_modify.New(deps).Handle)
	mux.HandleFunc(constants.RouteTableDrop, api_table_drop.New(deps).Handle)

	// Rows
	mux.HandleFunc(constants.RouteRowInsert, api_row_insert.New(deps).Handle)
	mux.HandleFunc(constants.RouteRowUpdate, api_row_update.New(deps).Handle)
	mux.HandleFunc(constants.RouteRowDelete, api_row_delete.New(deps).Handle)
	mux.HandleFunc(constants.RouteRowsSelect, api_rows_select.New(deps).Handle)

	// Constraints
	constraints := api_constraint_add.New(deps)
	mux.HandleFunc(constants.RouteConstraintPrimaryKey, constraints.HandlePrimaryKey)
	mux.HandleFunc(constants.RouteConstraintForeignKey, constraints.HandleForeignKey)
	mux.HandleFunc(constants.RouteConstraintUnique, constraints.HandleUnique)
	mux.HandleFunc(constants.RouteConstraintDrop, api_constraint_drop.New(deps).Handle)

	// Introspection
	mux.HandleFunc(constants.RouteTablesList, api_tables_list.New(deps).Handle)
	mux.HandleFunc(constants.RouteTableStructure, api_table_structure.New(deps).Handle)

	health := api_health.New(deps)
	mux.HandleFunc(constants.RouteHealthz, health.HandleLive)
	mux.HandleFunc(constants.RouteReadyz, health.HandleReady)
}

// middleware applies common middleware to all handlers, outermost first
func (a *App) middleware(next http.Handler) http.Handler {
	h := SecurityHeaders(next)
	h = CORS(a.config.CORSAllowedOrigins)(h)
	h = Recoverer(a.logger)(h)
	return RequestLogger(a.logger)(h)
}
