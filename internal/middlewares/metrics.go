package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nawi-studio/nawi-backend/internal/metrics"
)

// MetricsMiddleware records request duration per method/path/status.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequestDuration(
			r.Method, r.URL.Path, strconv.Itoa(rw.statusCode), time.Since(start))
	})
}
