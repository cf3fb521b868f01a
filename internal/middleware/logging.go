package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"

	"FITZEN_BACK-END/internal/logger"
)

// RequestLogger logs one line per request with its status, size and latency.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		log := logger.Info
		if m.Code >= http.StatusInternalServerError {
			log = logger.Error
		}
		log("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration_ms", m.Duration.Milliseconds(),
			"remote_addr", r.RemoteAddr,
		)
	})
}
