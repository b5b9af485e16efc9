package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"audiobirdle/internal/security"
)

func TestDeviceIdentityMintsAndKeepsIdentity(t *testing.T) {
	m := NewMiddleware("test-secret", nil)

	var seen []string
	handler := m.DeviceIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, GetDeviceID(r.Context()))
	}))

	// First contact mints an identity and sets the cookie.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	cookies := w.Result().Cookies()
	var device *http.Cookie
	for _, c := range cookies {
		if c.Name == deviceCookieName {
			device = c
		}
	}
	if device == nil {
		t.Fatal("no device cookie set on first contact")
	}
	if len(seen) != 1 || seen[0] == "" {
		t.Fatalf("device id not in context: %v", seen)
	}

	// Replaying the cookie keeps the same identity.
	r := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	r.AddCookie(device)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if seen[1] != seen[0] {
		t.Errorf("identity changed across requests: %q then %q", seen[0], seen[1])
	}
}

func TestDeviceIdentityRejectsForgedToken(t *testing.T) {
	m := NewMiddleware("test-secret", nil)
	other := NewMiddleware("different-secret", nil)

	var seen []string
	handler := m.DeviceIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, GetDeviceID(r.Context()))
	}))

	forged, err := other.signDeviceToken("attacker-chosen-id")
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	r.AddCookie(&http.Cookie{Name: deviceCookieName, Value: forged})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if seen[0] == "attacker-chosen-id" {
		t.Error("forged token accepted")
	}
}

func TestRateLimitBlocksOverBudget(t *testing.T) {
	m := NewMiddleware("test-secret", security.NewRateLimiter(2, time.Minute))

	handler := m.RateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/regions", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/regions", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("over-budget request: status = %d, want 429", w.Code)
	}
}
