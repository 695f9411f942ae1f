package middlewares

import (
	"net/http"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/auth"
)

type IdentityResolver interface {
	Identify(r *http.Request) (auth.Identity, bool)
}

// Session attaches the caller's identity to the request context when the
// session cookie resolves; anonymous requests pass through untouched.
func Session(resolver IdentityResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := resolver.Identify(r); ok {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLoginRedirect sends anonymous callers to the login page. Used on GET forms.
func RequireLoginRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLoginForbidden rejects anonymous callers with 403. Used on state-changing POSTs.
func RequireLoginForbidden(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); !ok {
			apperr.WriteError(w, r, http.StatusForbidden, apperr.MsgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
