package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

type contextKey string

const adminContextKey contextKey = "admin"

// AdminFromContext extracts the authenticated administrator from the
// request context. Returns nil if the request is unauthenticated.
func AdminFromContext(ctx context.Context) *domain.Admin {
	admin, _ := ctx.Value(adminContextKey).(*domain.Admin)
	return admin
}

// RequireAuth guards protected pages. It reads the auth_token cookie,
// validates the session token, loads the administrator, and injects it
// into the request context. Unauthenticated visitors are redirected to
// the login screen.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := authenticateRequest(r, auth)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attempts to authenticate but never blocks the request. The
// login screen uses it to bounce already-authenticated visitors back to
// the dashboard.
func OptionalAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := authenticateRequest(r, auth)
		if err == nil && admin != nil {
			ctx := context.WithValue(r.Context(), adminContextKey, admin)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (*domain.Admin, error) {
	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return nil, err
	}

	adminID, err := auth.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	return auth.GetAdminByID(r.Context(), adminID)
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs every request with a generated request id, status,
// and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		slog.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// statusRecorder captures the response status code for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
