package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/planmate/planmate/internal/adapters/http/dto"
)

// errInternalServer is what clients see after a recovered panic. The panic
// value and stack stay in the logs.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns downstream panics into RFC 9457
// 500 responses. When the handler panicked after writing headers the response
// is left as-is and only the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !sw.wroteHeader {
					dto.WriteErrorResponse(sw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
