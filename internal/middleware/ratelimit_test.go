package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"
)

func newDashboardRequest(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.RemoteAddr = ip
	return req
}

func asUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestNewRateLimiter_AppliesDefaults(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{})
	defer rl.Stop()

	if rl.rate != 100 || rl.window != time.Minute || rl.burst != 20 {
		t.Errorf("expected defaults 100/1m/20, got %d/%v/%d", rl.rate, rl.window, rl.burst)
	}
}

func TestNewRateLimiter_KeepsExplicitConfig(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 50, Window: 30 * time.Second, Burst: 10})
	defer rl.Stop()

	if rl.rate != 50 || rl.window != 30*time.Second || rl.burst != 10 {
		t.Errorf("expected 50/30s/10, got %d/%v/%d", rl.rate, rl.window, rl.burst)
	}
}

func TestAllow_NewKeyOpensWithBurstBalance(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 10, Window: time.Minute, Burst: 5})
	defer rl.Stop()

	allowed, remaining, _ := rl.Allow("users:lena")

	if !allowed {
		t.Error("first request for a fresh key should pass")
	}
	// Opening balance is rate+burst minus this request: 10+5-1.
	if remaining != 14 {
		t.Errorf("expected 14 tokens left, got %d", remaining)
	}
}

func TestAllow_DeniesOnceBalanceIsSpent(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 5, Window: time.Minute, Burst: 1})
	defer rl.Stop()

	for i := 0; i < 6; i++ {
		if allowed, _, _ := rl.Allow("users:lena"); !allowed {
			t.Fatalf("request %d should still be within the allowance", i+1)
		}
	}

	allowed, remaining, _ := rl.Allow("users:lena")
	if allowed {
		t.Error("request past the allowance should be denied")
	}
	if remaining != 0 {
		t.Errorf("expected 0 tokens left, got %d", remaining)
	}
}

func TestAllow_KeysHoldSeparateBalances(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 5, Window: time.Minute, Burst: 1})
	defer rl.Stop()

	for i := 0; i < 6; i++ {
		rl.Allow("users:lena")
	}
	if allowed, _, _ := rl.Allow("users:lena"); allowed {
		t.Error("users:lena should be spent")
	}

	allowed, remaining, _ := rl.Allow("users:marc")
	if !allowed {
		t.Error("a different key holds its own balance")
	}
	if remaining != 5 {
		t.Errorf("expected a fresh balance of 5 for users:marc, got %d", remaining)
	}
}

func TestAllow_RefillsAfterFullWindow(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 5, Window: 50 * time.Millisecond, Burst: 1})
	defer rl.Stop()

	for i := 0; i < 6; i++ {
		rl.Allow("users:lena")
	}
	if allowed, _, _ := rl.Allow("users:lena"); allowed {
		t.Fatal("balance should be spent before the refill")
	}

	time.Sleep(60 * time.Millisecond)

	allowed, remaining, _ := rl.Allow("users:lena")
	if !allowed {
		t.Error("a full window should restore the balance")
	}
	if remaining != 5 {
		t.Errorf("expected 5 tokens after refill, got %d", remaining)
	}
}

func TestAllow_BalanceNeverExceedsRatePlusBurst(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 10, Window: 50 * time.Millisecond, Burst: 5})
	defer rl.Stop()

	rl.Allow("users:lena")
	time.Sleep(200 * time.Millisecond)

	_, remaining, _ := rl.Allow("users:lena")
	if remaining > 14 {
		t.Errorf("balance should cap at rate+burst-1 = 14, got %d", remaining)
	}
}

func TestAllow_ResetTimeIsOneWindowOut(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 10, Window: time.Minute})
	defer rl.Stop()

	before := time.Now()
	_, _, resetTime := rl.Allow("users:lena")
	after := time.Now()

	if resetTime.Before(before.Add(time.Minute).Add(-time.Second)) || resetTime.After(after.Add(time.Minute).Add(time.Second)) {
		t.Errorf("reset time %v not roughly one window out", resetTime)
	}
}

func TestAllow_SharedKeyConcurrency(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 1000, Window: time.Minute, Burst: 100})
	defer rl.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rl.Allow("users:lena")
			}
		}()
	}
	wg.Wait()
}

func TestCleanup_DropsIdleBuckets(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 10, Window: 50 * time.Millisecond, Cleanup: 10 * time.Millisecond})
	defer rl.Stop()

	rl.Allow("users:lena")

	rl.mu.Lock()
	_, exists := rl.buckets["users:lena"]
	rl.mu.Unlock()
	if !exists {
		t.Fatal("bucket should exist right after a request")
	}

	// Idle for more than two windows, which is the cleanup cutoff.
	time.Sleep(150 * time.Millisecond)

	rl.mu.Lock()
	_, exists = rl.buckets["users:lena"]
	rl.mu.Unlock()
	if exists {
		t.Error("idle bucket should have been dropped")
	}
}

func TestCleanup_KeepsActiveBuckets(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 10, Window: time.Minute, Cleanup: 10 * time.Millisecond})
	defer rl.Stop()

	rl.Allow("users:lena")
	time.Sleep(50 * time.Millisecond)

	rl.mu.Lock()
	_, exists := rl.buckets["users:lena"]
	rl.mu.Unlock()
	if !exists {
		t.Error("a bucket within its window should survive cleanup")
	}
}

func TestRateLimitMiddleware_SetsQuotaHeaders(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 100, Window: time.Minute, Burst: 20})
	defer rl.Stop()

	handler := &captureHandler{}
	rr := httptest.NewRecorder()
	RateLimit(rl)(handler).ServeHTTP(rr, newDashboardRequest("203.0.113.7:51000"))

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !handler.called {
		t.Error("request within quota should reach the handler")
	}
	if rr.Header().Get("X-RateLimit-Limit") != "100" {
		t.Errorf("expected X-RateLimit-Limit 100, got %q", rr.Header().Get("X-RateLimit-Limit"))
	}
	if rr.Header().Get("X-RateLimit-Remaining") == "" || rr.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("expected remaining and reset headers")
	}
}

func TestRateLimitMiddleware_SpentQuotaReturns429(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 2, Window: time.Minute, Burst: 1})
	defer rl.Stop()

	handler := &captureHandler{}
	middleware := RateLimit(rl)
	for i := 0; i < 3; i++ {
		middleware(handler).ServeHTTP(httptest.NewRecorder(), newDashboardRequest("203.0.113.7:51000"))
	}

	rr := httptest.NewRecorder()
	handler.called = false
	middleware(handler).ServeHTTP(rr, newDashboardRequest("203.0.113.7:51000"))

	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rr.Code)
	}
	if handler.called {
		t.Error("a throttled request must not reach the handler")
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header on 429")
	}
}

func TestRateLimitMiddleware_AuthenticatedUsersDoNotShareIPQuota(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 2, Window: time.Minute, Burst: 1})
	defer rl.Stop()

	handler := &captureHandler{}
	middleware := RateLimit(rl)

	// Two players on the clubhouse wifi share one IP but not one quota.
	lena := asUser(newDashboardRequest("203.0.113.7:51000"), "users:lena")
	for i := 0; i < 3; i++ {
		middleware(handler).ServeHTTP(httptest.NewRecorder(), lena)
	}

	marc := asUser(newDashboardRequest("203.0.113.7:51000"), "users:marc")
	rr := httptest.NewRecorder()
	handler.called = false
	middleware(handler).ServeHTTP(rr, marc)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200 for the second player, got %d", rr.Code)
	}
	if !handler.called {
		t.Error("the second player should reach the handler")
	}
}

func TestRateLimitMiddleware_AnonymousFallsBackToIP(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 2, Window: time.Minute, Burst: 1})
	defer rl.Stop()

	handler := &captureHandler{}
	middleware := RateLimit(rl)
	for i := 0; i < 3; i++ {
		middleware(handler).ServeHTTP(httptest.NewRecorder(), newDashboardRequest("203.0.113.7:51000"))
	}

	rr := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rr, newDashboardRequest("203.0.113.7:51000"))
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 for the spent IP, got %d", rr.Code)
	}

	rr2 := httptest.NewRecorder()
	handler.called = false
	middleware(handler).ServeHTTP(rr2, newDashboardRequest("198.51.100.4:40200"))
	if rr2.Code != http.StatusOK {
		t.Errorf("expected 200 for a different IP, got %d", rr2.Code)
	}
}

func TestRateLimitMiddleware_RetryAfterAtLeastOneSecond(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimitConfig{Rate: 1, Window: time.Millisecond, Burst: 1})
	defer rl.Stop()

	handler := &captureHandler{}
	middleware := RateLimit(rl)
	for i := 0; i < 2; i++ {
		middleware(handler).ServeHTTP(httptest.NewRecorder(), newDashboardRequest("203.0.113.7:51000"))
	}

	rr := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rr, newDashboardRequest("203.0.113.7:51000"))

	if rr.Code == http.StatusTooManyRequests {
		if v, err := strconv.Atoi(rr.Header().Get("Retry-After")); err != nil || v < 1 {
			t.Errorf("Retry-After should round up to at least 1, got %q", rr.Header().Get("Retry-After"))
		}
	}
}
