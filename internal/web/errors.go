package web

// errors.go provides unified error response handling for the web layer.
//
// Every domain failure surfaces here as the core's message text. The flow:
//  1. A handler gets a failed Result (or a boundary validation failure)
//  2. It calls respondFailure(w, r, status, message)
//  3. The message is mapped via core.MapMessage for a support code
//  4. The failure is logged with the request ID for correlation
//  5. The client receives the message verbatim plus code and action
//
// No failure is swallowed or retried; the message the core produced is
// exactly what the client sees in the "error" field.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"excelproc/internal/core"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON structure for error responses. Error carries
// the domain failure verbatim; Code and Action come from the support
// code table.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// respondFailure logs a domain failure and writes the JSON error response.
func respondFailure(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	userMsg := core.MapMessage(message)

	slog.Error("request failed",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", message,
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:  message,
		Action: userMsg.Action,
		Code:   userMsg.Code,
	})
}
