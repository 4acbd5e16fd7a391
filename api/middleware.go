package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"dovvia/internal/domain"
	"dovvia/internal/services"
)

type contextKey string

// CtxUser carries the authenticated admin user through the request context.
const CtxUser contextKey = "user"

// CtxRequestID carries the request ID assigned by RequestIDMiddleware.
const CtxRequestID contextKey = "request_id"

// RequestIDMiddleware assigns each request an ID, honoring one sent by
// an upstream proxy, and echoes it in the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), CtxRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID, if one was assigned.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestID).(string)
	return id
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// JWTAuthMiddleware authenticates admin requests and requires the
// admin role.
func JWTAuthMiddleware(authSvc *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeJSON(w, errorResponse{Error: "authorization header required"}, http.StatusUnauthorized)
				return
			}

			user, err := authSvc.Authenticate(r.Context(), token)
			if err != nil {
				writeJSON(w, errorResponse{Error: "invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			if !user.IsAdmin {
				writeJSON(w, errorResponse{Error: "admin access required"}, http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FunctionsAuthMiddleware guards the notification function endpoints
// with the shared bearer credential. With no credential configured the
// endpoints stay open, matching development setups.
func FunctionsAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Preflight requests carry no credential
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if token != "" {
				presented := bearerToken(r)
				if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
					writeJSON(w, errorResponse{Error: "invalid bearer credential"}, http.StatusUnauthorized)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated admin user, if any.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(CtxUser).(*domain.User)
	return user
}
