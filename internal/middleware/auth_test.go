package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/pkg/jwt"
)

// ============================================================================
// Mocks
// ============================================================================

type mockValidator struct {
	validateFunc func(token string) (*jwt.Claims, error)
}

func (m *mockValidator) Validate(token string) (*jwt.Claims, error) {
	return m.validateFunc(token)
}

// successValidator returns valid claims for any token
func successValidator(userID, email string) *mockValidator {
	return &mockValidator{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return &jwt.Claims{
				UserID: userID,
				Email:  email,
			}, nil
		},
	}
}

// errorValidator returns the specified error
func errorValidator(err error) *mockValidator {
	return &mockValidator{
		validateFunc: func(token string) (*jwt.Claims, error) {
			return nil, err
		},
	}
}

type mockResolver struct {
	resolveFunc func(ctx context.Context, claims *jwt.Claims) *model.Session
}

func (m *mockResolver) Resolve(ctx context.Context, claims *jwt.Claims) *model.Session {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, claims)
	}
	if claims == nil {
		return model.AnonymousSession()
	}
	return &model.Session{
		User: &model.UserDocument{ID: claims.UserID, Email: claims.Email},
	}
}

// adminResolver resolves every claim to an admin session
func adminResolver() *mockResolver {
	return &mockResolver{
		resolveFunc: func(ctx context.Context, claims *jwt.Claims) *model.Session {
			return &model.Session{
				User:    &model.UserDocument{ID: claims.UserID, Email: claims.Email, IsAdmin: true},
				IsAdmin: true,
			}
		},
	}
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Auth() Middleware Tests
// ============================================================================

func TestAuth_ValidToken_CallsHandlerWithSession(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := Auth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer valid-token"))

	if !handler.called {
		t.Fatal("expected handler to be called")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}

	session := GetSession(handler.ctx)
	if session == nil || session.User == nil || session.User.ID != "user:123" {
		t.Errorf("expected session for user:123, got %+v", session)
	}
	if GetUserID(handler.ctx) != "user:123" {
		t.Errorf("expected user ID in context, got %q", GetUserID(handler.ctx))
	}
	if GetUserEmail(handler.ctx) != "player@ffc.club" {
		t.Errorf("expected email in context, got %q", GetUserEmail(handler.ctx))
	}
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := Auth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest(""))

	if handler.called {
		t.Error("handler must not be called without a token")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_MalformedHeader_Returns401(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"valid-token", "Basic dXNlcjpwYXNz", "Bearer"} {
		handler := &captureHandler{}
		mw := Auth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

		rr := httptest.NewRecorder()
		mw(handler).ServeHTTP(rr, newTestRequest(header))

		if handler.called {
			t.Errorf("header %q: handler must not be called", header)
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rr.Code)
		}
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := Auth(errorValidator(jwt.ErrTokenExpired), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer expired"))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_InvalidSignature_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := Auth(errorValidator(jwt.ErrInvalidSignature), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer forged"))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_TokenFromQueryParam_IsAccepted(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := Auth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

	req := httptest.NewRequest(http.MethodGet, "/chat/ws?token=valid-token", nil)
	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, req)

	if !handler.called {
		t.Fatal("expected handler to be called with query param token")
	}
	if GetUserID(handler.ctx) != "user:123" {
		t.Errorf("expected user ID from query token, got %q", GetUserID(handler.ctx))
	}
}

// ============================================================================
// OptionalAuth() Middleware Tests
// ============================================================================

func TestOptionalAuth_NoToken_AnonymousSession(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := OptionalAuth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest(""))

	if !handler.called {
		t.Fatal("expected handler to be called")
	}
	session := GetSession(handler.ctx)
	if session == nil {
		t.Fatal("expected an anonymous session in context")
	}
	if session.User != nil || session.IsAdmin {
		t.Errorf("expected anonymous session, got %+v", session)
	}
}

func TestOptionalAuth_InvalidToken_AnonymousSession(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := OptionalAuth(errorValidator(jwt.ErrInvalidToken), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer garbage"))

	if !handler.called {
		t.Fatal("expected handler to be called despite bad token")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	session := GetSession(handler.ctx)
	if session == nil || session.User != nil {
		t.Errorf("expected anonymous session, got %+v", session)
	}
}

func TestOptionalAuth_ValidToken_ResolvedSession(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := OptionalAuth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer valid-token"))

	session := GetSession(handler.ctx)
	if session == nil || session.User == nil || session.User.ID != "user:123" {
		t.Errorf("expected resolved session, got %+v", session)
	}
}

// ============================================================================
// AdminAuth() Middleware Tests
// ============================================================================

func TestAdminAuth_AdminSession_CallsHandler(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := AdminAuth(successValidator("user:123", "boss@ffc.club"), adminResolver())

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer admin-token"))

	if !handler.called {
		t.Fatal("expected handler to be called for admin")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestAdminAuth_NonAdminSession_Returns403(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := AdminAuth(successValidator("user:123", "player@ffc.club"), &mockResolver{})

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest("Bearer player-token"))

	if handler.called {
		t.Error("handler must not be called for non-admin")
	}
	if rr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rr.Code)
	}
}

func TestAdminAuth_NoToken_Returns401(t *testing.T) {
	t.Parallel()

	handler := &captureHandler{}
	mw := AdminAuth(successValidator("user:123", "boss@ffc.club"), adminResolver())

	rr := httptest.NewRecorder()
	mw(handler).ServeHTTP(rr, newTestRequest(""))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

// ============================================================================
// Context Helper Tests
// ============================================================================

func TestGetSession_EmptyContext_ReturnsNil(t *testing.T) {
	t.Parallel()

	if GetSession(context.Background()) != nil {
		t.Error("expected nil session from empty context")
	}
}

func TestGetClaims_EmptyContext_ReturnsNil(t *testing.T) {
	t.Parallel()

	if GetClaims(context.Background()) != nil {
		t.Error("expected nil claims from empty context")
	}
}
