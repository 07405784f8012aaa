package logging

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
	"github.com/goliatone/go-htmx-mvc/pkg/render"
)

// Middleware logs one line per request. Server errors log at error level.
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", mvc.RequestIDFrom(r.Context())),
				zap.Bool("htmx", render.IsFragmentRequest(r)),
			}
			if status >= http.StatusInternalServerError {
				logger.Error("request", fields...)
				return
			}
			logger.Info("request", fields...)
		})
	}
}

// ActionErrors returns a router hook that logs action failures.
func ActionErrors(logger *zap.Logger) mvc.ErrorHandler {
	return func(r *http.Request, status int, err error) {
		logger.Warn("action failed",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("request_id", mvc.RequestIDFrom(r.Context())),
			zap.Error(err),
		)
	}
}

// Panics returns a status pages hook that logs recovered panics.
func Panics(logger *zap.Logger) mvc.PanicHandler {
	return func(r *http.Request, recovered any) {
		logger.Error("panic recovered",
			zap.String("path", r.URL.Path),
			zap.String("request_id", mvc.RequestIDFrom(r.Context())),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
	}
}

type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *recorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
