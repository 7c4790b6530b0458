// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures with request context and renders
// the matching error page, so feature handlers stay one-liners on
// their error paths.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: log}
}

// Internal logs the error and renders a generic failure page.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.log.Error(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	RenderForbidden(w, r, "Something went wrong. Please try again.", "")
}

// InternalJSON logs the error and writes a JSON 500 for API routes.
func (e *ErrorLogger) InternalJSON(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.log.Error(msg,
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.Error(err),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"internal server error"}`))
}
