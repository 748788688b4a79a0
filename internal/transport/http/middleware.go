package http

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/light-bringer/checkout-service/internal/pkg/token"
)

// statusRecorder wraps http.ResponseWriter and records the status code
// written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// Logging emits one structured log line per request with method, path,
// status and duration. 5xx log as errors, 4xx as warnings.
func Logging(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			if rec.statusCode >= 500 {
				level = slog.LevelError
			} else if rec.statusCode >= 400 {
				level = slog.LevelWarn
			}

			args := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.statusCode),
				slog.Duration("duration", time.Since(start)),
			}
			if claims, err := callerFrom(r.Context()); err == nil {
				args = append(args, slog.String("user_id", claims.UserID))
			}

			logger.Log(r.Context(), level, "http_request", args...)
		})
	}
}

// Recovery converts a handler panic into a 500 instead of a crashed
// process.
func Recovery(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					writeJSON(w, http.StatusInternalServerError, errorBody{Message: "internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate verifies the Bearer token and stores the caller claims
// in the request context. Requests without a valid token get 401.
func Authenticate(tokens *token.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody{Message: "missing bearer token"})
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorBody{Message: "invalid token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// MaybeAuthenticate stores caller claims when a valid Bearer token is
// present but lets anonymous requests through. Registration uses it:
// anyone may register, but only an authenticated admin may mint
// another admin.
func MaybeAuthenticate(tokens *token.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if raw, found := strings.CutPrefix(header, "Bearer "); found && raw != "" {
				if claims, err := tokens.Verify(raw); err == nil {
					r = r.WithContext(withClaims(r.Context(), claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects authenticated non-admin callers with 403. It
// must sit inside Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := callerFrom(r.Context())
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Message: "missing bearer token"})
			return
		}
		if !claims.Admin {
			writeJSON(w, http.StatusForbidden, errorBody{Message: "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowSelfOrAdmin answers whether the caller may act on the given
// user's resources, writing 403 when not.
func allowSelfOrAdmin(w http.ResponseWriter, r *http.Request, userID string) bool {
	claims, err := callerFrom(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: "missing bearer token"})
		return false
	}
	if !claims.Admin && claims.UserID != userID {
		writeJSON(w, http.StatusForbidden, errorBody{Message: "forbidden"})
		return false
	}
	return true
}
