package middleware

import "net/http"

// Chain folds a list of middleware into one, applied outermost-first, so the
// list reads in the order requests traverse it:
//
//	Chain(Recovery(l), RequestID(), Session(s))(h)
//
// behaves as Recovery(l)(RequestID()(Session(s)(h))).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
