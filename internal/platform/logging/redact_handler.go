package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. This set is shared
// between the masq defense-in-depth layer and the HTTP middleware so the two
// cannot silently drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values,
// which is how session tokens travel on the wire.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveHeaders set (4 field names + 1 prefix + 1 regex).
const fixedRedactOptions = 6

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders))

	// Sensitive header names shared with the HTTP middleware layer.
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	// Credential fields that must never reach a log sink, regardless of
	// where the log call sits.
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("password_hash"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),

		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(bearerPattern),
	)

	return masq.New(opts...)
}
