package api

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/cinescope/cinescope-server/internal/http/response"
	"github.com/cinescope/cinescope-server/internal/id"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyRequestID contextKey = "request_id"

const requestIDHeader = "X-Request-ID"

// requestID attaches a request ID to the context and the response. A
// well-formed client-supplied ID is kept so calls can be traced end to end.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if !id.ValidRequest(reqID) {
			reqID = id.Request()
		}

		w.Header().Set(requestIDHeader, reqID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getRequestID extracts the request ID from context.
// Returns empty string if none was assigned.
func getRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// requestLogger logs one line per request once it completes.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			switch {
			case ww.Status() >= 500:
				level = slog.LevelError
			case ww.Status() >= 400:
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote_ip", r.RemoteAddr,
				"request_id", getRequestID(r.Context()),
			)
		})
	}
}

// recoverer turns a panicking handler into a 500 envelope.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("Handler panicked",
					"panic", rec,
					"path", r.URL.Path,
					"request_id", getRequestID(r.Context()),
					"stack", string(debug.Stack()),
				)
				response.InternalError(w, "internal server error", logger)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// securityHeaders sets conservative headers for a JSON-only API.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
