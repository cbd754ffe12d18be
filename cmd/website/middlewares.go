package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

/*
newRequestLoggerMiddleware tags each request with an ID, taken from the
X-Request-ID header when the caller sent one, and logs it on completion.
*/
func newRequestLoggerMiddleware(excludedPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, excludedPath := range excludedPaths {
				if r.URL.Path == excludedPath {
					next.ServeHTTP(w, r)
					return
				}
			}

			requestID := r.Header.Get("X-Request-ID")

			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}

			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			recorder.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(recorder, r)

			slog.Info("request",
				slog.String("requestID", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", recorder.status),
				slog.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
