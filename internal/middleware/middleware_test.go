package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivrajsoni/portfolio/internal/auth"
	"github.com/Shivrajsoni/portfolio/internal/httputil"
	"github.com/Shivrajsoni/portfolio/internal/ratelimit"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireAdmin(t *testing.T) {
	gate := auth.NewStaticGate("admin", "pw", "tok", discardLogger())
	handler := RequireAdmin(gate, discardLogger())(okHandler)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{name: "no token", setup: func(r *http.Request) {}, status: http.StatusUnauthorized},
		{name: "cookie", setup: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "adminToken", Value: "tok"})
		}, status: http.StatusOK},
		{name: "bearer", setup: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer tok")
		}, status: http.StatusOK},
		{name: "wrong bearer", setup: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer nope")
		}, status: http.StatusUnauthorized},
		{name: "empty cookie", setup: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "adminToken", Value: ""})
		}, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/blogs", nil)
			tt.setup(r)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewMemory(time.Minute)
	policy := ratelimit.NewPolicy(2)
	handler := RateLimit(limiter, policy, time.Minute, nil, discardLogger())(okHandler)

	call := func(peer string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/admin/projects", nil)
		r.RemoteAddr = peer + ":40000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	assert.Equal(t, http.StatusOK, call("1.1.1.1").Code)
	assert.Equal(t, http.StatusOK, call("1.1.1.1").Code)

	denied := call("1.1.1.1")
	assert.Equal(t, http.StatusTooManyRequests, denied.Code)
	assert.Equal(t, "60", denied.Header().Get("Retry-After"))
	assert.Equal(t, "application/problem+json", denied.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusOK, call("2.2.2.2").Code)
}

func TestRateLimit_ForwardedForCannotResetWindow(t *testing.T) {
	proxies, err := httputil.ParseTrustedProxies("10.0.0.0/8")
	require.NoError(t, err)

	tests := []struct {
		name    string
		proxies *httputil.TrustedProxies
		peer    string
	}{
		{name: "direct connection", proxies: nil, peer: "203.0.113.7:40000"},
		{name: "behind trusted proxy", proxies: proxies, peer: "10.0.0.3:40000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := ratelimit.NewMemory(time.Minute)
			handler := RateLimit(limiter, ratelimit.DefaultPolicy(), time.Minute, tt.proxies, discardLogger())(okHandler)

			codes := make([]int, 0, 10)
			for i := 0; i < 10; i++ {
				r := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
				r.RemoteAddr = tt.peer
				r.Header.Set("X-Forwarded-For", fmt.Sprintf("10.9.9.%d, 203.0.113.7", i))
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, r)
				codes = append(codes, w.Code)
			}

			for i, code := range codes {
				if i < 5 {
					assert.Equal(t, http.StatusOK, code, "request %d", i+1)
				} else {
					assert.Equal(t, http.StatusTooManyRequests, code, "request %d", i+1)
				}
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRequestLogger(t *testing.T) {
	var seen string
	handler := RequestLogger(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetRequestID(r)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc")
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "abc", seen)
}
