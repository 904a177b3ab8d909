package accessgate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecide_Table(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()

	cases := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{"favicon anonymous", "/favicon.ico", false, Allow},
		{"favicon authenticated", "/favicon.ico", true, Allow},
		{"login anonymous", "/login", false, Allow},
		{"login authenticated", "/login", true, RedirectToDashboard},
		{"signup anonymous", "/signup", false, Allow},
		{"dashboard anonymous", "/dashboard", false, RedirectToLogin},
		{"dashboard authenticated", "/dashboard", true, Allow},
		{"orders subpath authenticated", "/orders/123", true, Allow},
		{"unknown path authenticated", "/unknown-random-path", true, RedirectToDashboard},
		{"unknown path anonymous", "/unknown-random-path", false, RedirectToLogin},
		{"root anonymous", "/", false, RedirectToLogin},
		{"root authenticated", "/", true, RedirectToDashboard},
		{"reset password deep link anonymous", "/reset-password/abc/def", false, Allow},
		{"bulk sample authenticated", "/bulk-sample.csv", true, Allow},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, p.Decide(tc.path, tc.authenticated))
		})
	}
}

func TestDecide_ExemptionWinsOverAllowLists(t *testing.T) {
	t.Parallel()

	// A path on both the exempt list and an allow-list must short-circuit on
	// the exemption for either auth state.
	p := Policy{
		Exempt:        []string{"/login"},
		Anonymous:     []string{"/login"},
		Authenticated: []string{"/dashboard"},
	}
	require.Equal(t, Allow, p.Decide("/login", false))
	require.Equal(t, Allow, p.Decide("/login", true))
}

func TestDecide_IsStateless(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	first := p.Decide("/settings", true)
	for i := 0; i < 10; i++ {
		p.Decide("/unknown", false)
		require.Equal(t, first, p.Decide("/settings", true))
	}
}

func TestDecision_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "allow", Allow.String())
	require.Equal(t, "redirect_login", RedirectToLogin.String())
	require.Equal(t, "redirect_dashboard", RedirectToDashboard.String())
	require.Equal(t, "unknown", Decision(99).String())
}
