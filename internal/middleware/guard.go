package middleware

import "net/http"

// SessionChecker reports whether a session is active. Satisfied by the
// session store.
type SessionChecker interface {
	IsAuthenticated() bool
}

// RequireSession is the route guard: unauthenticated requests are redirected
// to the sign-in entry point instead of reaching the requested view. Pure
// function of session state; no side effects beyond the redirect.
func RequireSession(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAuthenticated() {
				http.Redirect(w, r, "/signin", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
