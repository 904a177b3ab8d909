package auth

import (
	"context"
	"net/http"
)

// CookieName is the browser cookie holding the opaque session token.
const CookieName = "user"

type ctxKey struct{}

// ContextWithToken returns a context carrying the session token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, token)
}

// TokenFromContext returns the session token from the context, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	return token, ok && token != ""
}

// TokenFromRequest reads the session cookie. An empty string means anonymous.
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Middleware lifts the session cookie into the request context so the
// logistics gateway can attach it as a bearer token.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := TokenFromRequest(r); token != "" {
				r = r.WithContext(ContextWithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}
