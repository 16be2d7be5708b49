package middleware

import (
	"net/http"
	"time"
)

// Logging пишет в лог метод, путь, код ответа и длительность запроса
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("HTTP %s %s -> %d in %v (request_id=%s, remote=%s)",
				r.Method, r.URL.RequestURI(), rec.status, time.Since(start),
				RequestIDFromContext(r.Context()), r.RemoteAddr)
		})
	}
}
