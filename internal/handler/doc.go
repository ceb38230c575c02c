// Package handler provides HTTP request handlers for the club API.
//
// Each handler struct encapsulates the dependencies needed to serve
// requests for a feature area (auth, dashboard, chat, admin).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Authentication
//
// Protected handlers sit behind the auth middleware, which resolves the
// session and makes it available via middleware.GetSession. The chat
// WebSocket uses OptionalAuth: anonymous connections receive snapshots
// but cannot send.
package handler
