package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that bounds the total time a request may spend
// in the handler chain. The deadline is carried on the request context so
// storage queries and the session store see it too. When the deadline fires
// before the handler finishes, the client gets a 504 and whatever the handler
// writes afterwards is discarded.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			dw := &deadlineWriter{dst: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				dw.mu.Lock()
				dw.flush()
				dw.mu.Unlock()
			case <-ctx.Done():
				dw.mu.Lock()
				dw.abandoned = true
				dw.mu.Unlock()
				w.WriteHeader(http.StatusGatewayTimeout)
			}
		})
	}
}

// deadlineWriter buffers the handler's response until the handler returns, so
// the timeout path never races the handler goroutine on the real writer. Once
// abandoned, buffered output is dropped.
type deadlineWriter struct {
	dst http.ResponseWriter

	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (dw *deadlineWriter) Header() http.Header {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.header == nil {
		dw.header = make(http.Header)
	}
	return dw.header
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.status == 0 {
		dw.status = code
	}
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	if dw.abandoned {
		// Pretend the write succeeded so handlers finish cleanly.
		return len(b), nil
	}
	dw.body = append(dw.body, b...)
	return len(b), nil
}

// flush replays the buffered response onto the real writer. Callers hold
// dw.mu.
func (dw *deadlineWriter) flush() {
	if dw.abandoned {
		return
	}
	if dw.header != nil {
		maps.Copy(dw.dst.Header(), dw.header)
	}
	if dw.status != 0 {
		dw.dst.WriteHeader(dw.status)
	}
	if len(dw.body) > 0 {
		_, _ = dw.dst.Write(dw.body)
	}
}
