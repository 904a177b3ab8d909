package accessgate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"seller-console/internal/auth"
	"seller-console/internal/http/middleware/accessgate"
	"seller-console/internal/logx"
)

func newGateCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gate_redirects_test_total",
		Help: "redirects",
	}, []string{"decision"})
}

func serve(t *testing.T, m *accessgate.Middleware, path, cookie string) (*httptest.ResponseRecorder, *int) {
	t.Helper()

	nextCalled := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled++
		w.WriteHeader(http.StatusOK)
	})
	h := m.Handler()(next)

	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w, &nextCalled
}

func TestHandler_AnonymousProtectedPathRedirectsToLogin(t *testing.T) {
	t.Parallel()

	counter := newGateCounter()
	m := accessgate.New(logx.Nop(), counter, accessgate.DefaultPolicy())

	w, nextCalled := serve(t, m, "/dashboard", "")

	require.Equal(t, 0, *nextCalled)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, accessgate.LoginPath, w.Header().Get("Location"))
	require.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("redirect_login")))
}

func TestHandler_AuthenticatedLoginRedirectsToDashboard(t *testing.T) {
	t.Parallel()

	counter := newGateCounter()
	m := accessgate.New(logx.Nop(), counter, accessgate.DefaultPolicy())

	w, nextCalled := serve(t, m, "/login", "tok")

	require.Equal(t, 0, *nextCalled)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, accessgate.DashboardPath, w.Header().Get("Location"))
	require.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("redirect_dashboard")))
}

func TestHandler_AllowedRequestPassesToNext(t *testing.T) {
	t.Parallel()

	m := accessgate.New(logx.Nop(), nil, accessgate.DefaultPolicy())

	w, nextCalled := serve(t, m, "/orders", "tok")

	require.Equal(t, 1, *nextCalled)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ExemptPathPassesForAnyAuthState(t *testing.T) {
	t.Parallel()

	m := accessgate.New(logx.Nop(), nil, accessgate.DefaultPolicy())

	for _, cookie := range []string{"", "tok"} {
		w, nextCalled := serve(t, m, "/favicon.ico", cookie)
		require.Equal(t, 1, *nextCalled)
		require.Equal(t, http.StatusOK, w.Code)
	}
}
