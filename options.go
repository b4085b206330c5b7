package sqlgateway

import (
	"go.uber.org/zap"

	"github.com/dracory/sqlgateway/shared/sqlguard"
)

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger shared by the middleware and every handler.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithGuard replaces the guard derived from Config.SQLGuard.
func WithGuard(guard *sqlguard.Guard) Option {
	return func(a *App) {
		a.guard = guard
	}
}
