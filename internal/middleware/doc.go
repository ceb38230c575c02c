// Package middleware provides HTTP middleware for the club API.
//
// The middleware package contains reusable middleware components for
// authentication, authorization, rate limiting, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth / OptionalAuth / AdminAuth: JWT validation and session resolution
//   - RateLimiter: Request rate limiting per client IP
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Authentication
//
// Auth validates the bearer token and resolves the session against the
// user document store. AdminAuth additionally requires the resolved
// session to carry the admin flag; the flag is never read from the
// token itself. OptionalAuth admits anonymous requests with an
// anonymous session.
//
// After authentication, handlers can access the session:
//
//	session := middleware.GetSession(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetSession(ctx): Returns the resolved session
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
