package accessgate

import "strings"

// Decision is the outcome of evaluating a navigation request.
type Decision int

// List of possible gate decisions
const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToDashboard
)

// String returns the decision name for logs and metrics labels.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_login"
	case RedirectToDashboard:
		return "redirect_dashboard"
	default:
		return "unknown"
	}
}

// Policy is a static mapping of path prefixes to required auth state.
// Paths in none of the lists redirect to the dashboard when authenticated
// and to the login page when not.
type Policy struct {
	// Exempt paths always pass regardless of auth state.
	Exempt []string
	// Anonymous is the allow-list for requests without a session token.
	Anonymous []string
	// Authenticated is the allow-list for requests with a session token.
	Authenticated []string
}

// DefaultPolicy returns the seller-console routing surface.
func DefaultPolicy() Policy {
	return Policy{
		Exempt: []string{"/favicon.ico"},
		Anonymous: []string{
			"/login",
			"/signup",
			"/forgot-password",
			"/reset-password",
		},
		Authenticated: []string{
			"/dashboard",
			"/new",
			"/orders",
			"/settings",
			"/track",
			"/rate-calc",
			"/print",
			"/admin",
			"/finance",
			"/bulk-sample.csv",
			"/pickup_bulk_sample.xlsx",
		},
	}
}

// Decide evaluates the ordered rules, first match wins:
//  1. exempt path → Allow
//  2. anonymous and not on the anonymous allow-list → RedirectToLogin
//  3. authenticated and not on the authenticated allow-list → RedirectToDashboard
//  4. otherwise → Allow
//
// Matching is prefix-based. Decide is a pure function of its arguments and
// the policy; it keeps no state across calls.
func (p Policy) Decide(path string, authenticated bool) Decision {
	if matchPrefix(p.Exempt, path) {
		return Allow
	}
	if !authenticated && !matchPrefix(p.Anonymous, path) {
		return RedirectToLogin
	}
	if authenticated && !matchPrefix(p.Authenticated, path) {
		return RedirectToDashboard
	}
	return Allow
}

func matchPrefix(prefixes []string, path string) bool {
	for _, pre := range prefixes {
		if strings.HasPrefix(path, pre) {
			return true
		}
	}
	return false
}
