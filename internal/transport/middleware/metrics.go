package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	HTTPRequest(method, route string, status int, seconds float64)
}

// Metrics records the status and latency of every request under route,
// the registered pattern rather than the raw path, to keep label
// cardinality bounded.
func Metrics(rec httpRecorder, route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.HTTPRequest(r.Method, route, sw.status, time.Since(start).Seconds())
		})
	}
}
