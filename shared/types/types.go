package types

import (
	"go.uber.org/zap"

	"github.com/dracory/sqlgateway/internal/ports"
	"github.com/dracory/sqlgateway/shared/sqlguard"
)

// Deps bundles the collaborators every endpoint handler is built from.
type Deps struct {
	// Exec runs statements on the shared connection pool
	Exec ports.Executor
	// Guard is optional; a nil guard accepts everything
	Guard *sqlguard.Guard
	// Logger must not be nil; use zap.NewNop() in tests
	Logger *zap.Logger
}
