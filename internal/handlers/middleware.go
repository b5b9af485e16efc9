package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"audiobirdle/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const DeviceContextKey ContextKey = "device"

const deviceCookieName = "birdle_device"

// deviceTokenLifetime is deliberately long: the token is the device's whole
// identity, and expiring it would orphan the player's history.
const deviceTokenLifetime = 365 * 24 * time.Hour

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessionSecret []byte
	limiter       *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessionSecret string, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		sessionSecret: []byte(sessionSecret),
		limiter:       limiter,
	}
}

// DeviceIdentity assigns every request an anonymous device id, the
// server-side stand-in for one browser's local storage. The id travels in a
// signed token cookie; a missing or invalid token mints a fresh identity
// rather than failing the request.
func (m *Middleware) DeviceIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := ""
		if cookie, err := r.Cookie(deviceCookieName); err == nil {
			deviceID = m.parseDeviceToken(cookie.Value)
		}

		if deviceID == "" {
			deviceID = uuid.New().String()
			token, err := m.signDeviceToken(deviceID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to establish device identity", "failed to sign device token", err)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     deviceCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(deviceTokenLifetime.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), DeviceContextKey, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit rejects clients that exceed the per-IP request budget.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func (m *Middleware) signDeviceToken(deviceID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(deviceTokenLifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.sessionSecret)
}

func (m *Middleware) parseDeviceToken(value string) string {
	token, err := jwt.ParseWithClaims(value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.sessionSecret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return ""
	}
	return claims.Subject
}

// GetDeviceID retrieves the device id from the request context
func GetDeviceID(ctx context.Context) string {
	deviceID, ok := ctx.Value(DeviceContextKey).(string)
	if !ok {
		return ""
	}
	return deviceID
}
