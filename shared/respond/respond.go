// Package respond writes the gateway's JSON envelopes: {success: true, ...}
// on success and {error: message} on failure.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dracory/sqlgateway/shared/logging"
)

// Message is the plain success envelope.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorBody is the failure envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes body with the given status code.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Success writes {success: true, message}.
func Success(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, Message{Success: true, Message: message})
}

// Error writes {error: message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// StatementError logs a failed statement and forwards the driver message as a 500.
func StatementError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, stmt string, err error) {
	logger.Warn("statement failed",
		zap.String("request_id", logging.RequestID(r.Context())),
		zap.String("sql", stmt),
		zap.Error(err),
	)
	Error(w, http.StatusInternalServerError, err.Error())
}

// Executed logs a successful statement at debug level.
func Executed(r *http.Request, logger *zap.Logger, stmt string) {
	logger.Debug("statement executed",
		zap.String("request_id", logging.RequestID(r.Context())),
		zap.String("sql", stmt),
	)
}
