// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The pipeline processes requests in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Session → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler; Chain composes a
// list of them into one.
package middleware

import "net/http"

// statusWriter wraps http.ResponseWriter so the observability middleware can
// read the status code and byte count after the handler returns.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func wrapWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code; later calls are dropped so a
// panic after a successful write cannot clobber the response.
func (sw *statusWriter) WriteHeader(code int) {
	if sw.wroteHeader {
		return
	}
	sw.status = code
	sw.wroteHeader = true
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wroteHeader = true
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController and to
// type assertions for http.Flusher and http.Hijacker.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
