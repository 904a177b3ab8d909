package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"seller-console/internal/auth"
	"seller-console/internal/logx"
)

type stubLimiter struct {
	allow bool
	keys  []string
}

func (s *stubLimiter) Allow(key string) bool {
	s.keys = append(s.keys, key)
	return s.allow
}

func TestMiddleware_AllowsRequestPassesToNext(t *testing.T) {
	t.Parallel()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
	})

	m := New(logx.Nop(), nil, &stubLimiter{allow: true})
	h := m.Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/api/orders", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, nextCalled)
}

func TestMiddleware_Blocks429AndCounts(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not be called")
	})
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ratelimit_denied_total_test",
		Help: "denied requests",
	})

	m := New(logx.Nop(), counter, &stubLimiter{allow: false})
	h := m.Handler()(next)

	r := httptest.NewRequest(http.MethodGet, "http://example/api/orders", nil)
	r.RemoteAddr = "1.2.3.4:5678"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "1", w.Header().Get("Retry-After"))
	require.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
	require.Equal(t, 1.0, testutil.ToFloat64(counter))
}

func TestMiddleware_KeysByTokenThenIP(t *testing.T) {
	t.Parallel()

	lim := &stubLimiter{allow: true}
	h := New(logx.Nop(), nil, lim).Handler()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "http://example/api/orders", nil)
	r = r.WithContext(auth.ContextWithToken(r.Context(), "tok-1"))
	r.RemoteAddr = "1.2.3.4:5678"
	h.ServeHTTP(httptest.NewRecorder(), r)

	anon := httptest.NewRequest(http.MethodGet, "http://example/api/orders", nil)
	anon.RemoteAddr = "1.2.3.4:5678"
	h.ServeHTTP(httptest.NewRecorder(), anon)

	require.Equal(t, []string{"token:tok-1", "ip:1.2.3.4"}, lim.keys)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		remote string
		want   string
	}{
		{"1.2.3.4:5678", "1.2.3.4"},
		{"1.2.3.4", "1.2.3.4"},
		{"", "unknown"},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "http://example/", nil)
		r.RemoteAddr = tc.remote
		require.Equal(t, tc.want, clientIP(r), "remote %q", tc.remote)
	}
}
