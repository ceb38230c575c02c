package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/pkg/jwt"
)

// TokenValidator defines the interface for token validation
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// SessionResolver turns validated claims into a session. Resolution
// never fails: lookup problems degrade to a non-admin session.
type SessionResolver interface {
	Resolve(ctx context.Context, claims *jwt.Claims) *model.Session
}

// SessionKey is the context key for the resolved session
const SessionKey contextKey = "session"

// ClaimsKey is the context key for JWT claims
const ClaimsKey contextKey = "claims"

// UserEmailKey is the context key for user email
const UserEmailKey contextKey = "userEmail"

// Auth returns a middleware that requires a valid token and resolves
// the session for the request
func Auth(validator TokenValidator, resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				writeTokenError(w, err)
				return
			}

			session := resolver.Resolve(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims, session)))
		})
	}
}

// OptionalAuth resolves a session when a valid token is present and
// falls back to an anonymous session otherwise. It never rejects.
func OptionalAuth(validator TokenValidator, resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r.WithContext(withSession(r.Context(), nil, model.AnonymousSession())))
				return
			}

			claims, err := validator.Validate(token)
			if err != nil {
				// Invalid token, but optional so continue without auth
				next.ServeHTTP(w, r.WithContext(withSession(r.Context(), nil, model.AnonymousSession())))
				return
			}

			session := resolver.Resolve(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims, session)))
		})
	}
}

// AdminAuth is Auth plus an admin check on the resolved session. The
// admin flag comes from the user document, never from the token, so a
// revoked admin loses access on their next request.
func AdminAuth(validator TokenValidator, resolver SessionResolver) Middleware {
	auth := Auth(validator, resolver)
	return func(next http.Handler) http.Handler {
		return auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSession(r.Context())
			if session == nil || !session.IsAdmin {
				model.NewForbiddenError("admin access required").WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// GetSession extracts the resolved session from context
func GetSession(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(SessionKey).(*model.Session); ok {
		return session
	}
	return nil
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserEmail extracts the user email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}

// extractToken pulls the bearer token from the Authorization header, or
// from the token query parameter for WebSocket clients that cannot set
// headers.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

func withSession(ctx context.Context, claims *jwt.Claims, session *model.Session) context.Context {
	ctx = context.WithValue(ctx, SessionKey, session)
	if claims != nil {
		ctx = context.WithValue(ctx, ClaimsKey, claims)
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	}
	return ctx
}

func writeTokenError(w http.ResponseWriter, err error) {
	switch err {
	case jwt.ErrTokenExpired:
		model.NewUnauthorizedError("token expired").WriteJSON(w)
	case jwt.ErrInvalidSignature:
		model.NewUnauthorizedError("invalid token signature").WriteJSON(w)
	default:
		model.NewUnauthorizedError("invalid token").WriteJSON(w)
	}
}
