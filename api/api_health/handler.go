package api_health

import (
	"net/http"

	"github.com/dracory/api"
	"go.uber.org/zap"

	"github.com/dracory/sqlgateway/shared/logging"
	"github.com/dracory/sqlgateway/shared/types"
)

// Health serves the liveness and readiness probes
type Health struct {
	deps types.Deps
}

// New creates a new Health handler
func New(deps types.Deps) *Health {
	return &Health{deps: deps}
}

// HandleLive reports that the process is serving requests.
func (h *Health) HandleLive(w http.ResponseWriter, r *http.Request) {
	api.Respond(w, r, api.Success("ok"))
}

// HandleReady pings the pool so orchestrators can hold traffic while the
// database is unreachable.
func (h *Health) HandleReady(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Exec.Ping(r.Context()); err != nil {
		h.deps.Logger.Warn("readiness check failed",
			zap.String("request_id", logging.RequestID(r.Context())),
			zap.Error(err),
		)
		api.Respond(w, r, api.Error("database unavailable: "+err.Error()))
		return
	}

	api.Respond(w, r, api.SuccessWithData("ready", map[string]any{
		"driver": h.deps.Exec.Dialect(),
	}))
}
