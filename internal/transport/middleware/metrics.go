package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/crm-backend/internal/observer"
)

// Metrics records request latency by method and status class.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			observer.HTTPRequestDurationSeconds.
				WithLabelValues(r.Method, observer.StatusClass(sw.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
