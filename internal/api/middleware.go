package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/jwt"
	"github.com/oseayemenre/readinglist/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}
}

func (w *responseWriterWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (a *Api) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestId := r.Header.Get(middleware.RequestIDHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set(middleware.RequestIDHeader, requestId)

		ww := newResponseWriterWrapper(w)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		a.logger.Info(
			"request",
			slog.String("request_id", requestId),
			slog.String("method", r.Method),
			slog.String("path", r.URL.String()),
			slog.Int("status", ww.statusCode),
			slog.String("duration", duration.String()),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
	})
}

// Authenticate resolves the bearer token into the caller's id and role.
func (a *Api) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, token, ok := strings.Cut(header, " ")

		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			a.logger.Warn("bearer token not found", "status", "permission denied")
			respondWithAppError(w, apperrors.Unauthorized("bearer token not found"))
			return
		}

		claims, err := jwt.DecodeJWTToken(token, a.config.Jwt_secret)

		if err != nil {
			a.logger.Warn(err.Error(), "status", "permission denied")
			respondWithAppError(w, apperrors.Unauthorized("invalid token"))
			return
		}

		user := &models.User{
			Id:   claims.Id,
			Role: claims.Role,
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	})
}

// RequireRole only lets callers whose role is exactly role through.
// It must run after Authenticate.
func (a *Api) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := userFromContext(r.Context())

			if !ok || user.Role != role {
				a.logger.Warn("role does not have permission to access this route", "status", "permission denied")
				respondWithAppError(w, apperrors.Forbidden("role does not have permission to access this route"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}

// RateLimit throttles requests per client IP.
func (a *Api) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.limiter.Allow(clientIP(r)) {
			a.logger.Warn("rate limit exceeded", "remote_addr", r.RemoteAddr)
			w.Header().Set("Retry-After", "1")
			respondWithError(w, http.StatusTooManyRequests, fmt.Errorf("too many requests"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
