package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

// sensitiveHeaders lists header names (lowercase) whose values never reach
// the log output. Authorization carries the session bearer token.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
}

// RedactHeaders flattens request headers into slog attributes for the debug
// header dump. Sensitive header values become "[REDACTED]"; multi-value
// headers are joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		value := strings.Join(vals, ",")
		if sensitiveHeaders[strings.ToLower(key)] {
			value = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
