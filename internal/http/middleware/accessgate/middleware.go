package accessgate

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"seller-console/internal/auth"
	"seller-console/internal/logx"
)

// Target paths for gate redirects.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Middleware intercepts navigation requests and enforces the access policy.
type Middleware struct {
	logger  logx.Logger
	counter *prometheus.CounterVec
	policy  Policy
}

// New creates a gate Middleware. The counter is labeled by decision and may
// be nil.
func New(logger logx.Logger, counter *prometheus.CounterVec, policy Policy) *Middleware {
	return &Middleware{
		logger:  logger,
		counter: counter,
		policy:  policy,
	}
}

// Handler returns chi-style middleware. The session token is read fresh from
// the cookie on every request; the gate holds no per-request state.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authenticated := auth.TokenFromRequest(r) != ""
			decision := m.policy.Decide(r.URL.Path, authenticated)

			switch decision {
			case RedirectToLogin:
				m.redirect(w, r, LoginPath, decision, authenticated)
			case RedirectToDashboard:
				m.redirect(w, r, DashboardPath, decision, authenticated)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func (m *Middleware) redirect(w http.ResponseWriter, r *http.Request, target string, d Decision, authenticated bool) {
	if m.counter != nil {
		m.counter.WithLabelValues(d.String()).Inc()
	}
	m.logger.Info("access gate redirect",
		logx.String("path", r.URL.Path),
		logx.String("target", target),
		logx.Bool("authenticated", authenticated),
	)
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
