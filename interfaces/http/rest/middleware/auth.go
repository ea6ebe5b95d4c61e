package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"evograph/pkg/auth"
	"go.uber.org/zap"
)

// RateLimit enforces the per-IP request budget before anything else
// runs. A nil limiter turns the middleware into a pass-through.
func RateLimit(limiter *auth.IPRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := limiter.Allow(r.Context(), clientIP(r))
			switch {
			case err != nil:
				logger.Error("Rate limiter error", zap.Error(err))
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			case !allowed:
				writeJSONError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// Authenticate validates the request's bearer token, applies the
// per-user budget and stores the caller's identity in the context.
func Authenticate(validator *auth.JWTValidator, userLimiter *auth.UserRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Missing authentication token")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("Invalid token",
					zap.Error(err),
					zap.String("ip", clientIP(r)),
					zap.String("path", r.URL.Path),
				)
				writeJSONError(w, http.StatusUnauthorized, tokenProblem(err))
				return
			}

			allowed, err := userLimiter.Allow(r.Context(), claims.UserID)
			if err != nil {
				logger.Error("User rate limiter error", zap.Error(err))
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !allowed {
				writeJSONError(w, http.StatusTooManyRequests, "User rate limit exceeded")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
				Roles:  claims.Roles,
			})

			logger.Debug("Request authenticated",
				zap.String("user_id", claims.UserID),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenProblem maps validation failures to client-facing messages
// without leaking parser internals
func tokenProblem(err error) string {
	switch err {
	case auth.ErrExpiredToken:
		return "Token has expired"
	case auth.ErrInvalidSignature:
		return "Invalid token signature"
	default:
		return "Invalid token"
	}
}

// bearerToken pulls the JWT from the Authorization header, accepting a
// bare token for clients that omit the scheme, or from the auth_token
// cookie as a fallback.
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if scheme, token, found := strings.Cut(header, " "); found && strings.EqualFold(scheme, "bearer") {
			return token
		}
		return header
	}

	if cookie, err := r.Cookie("auth_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// clientIP resolves the originating address: first X-Forwarded-For hop,
// then X-Real-IP, then the connection's remote address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// writeJSONError renders the error envelope shared by all middleware
func writeJSONError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    code,
	})
}
