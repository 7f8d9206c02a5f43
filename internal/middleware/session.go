// Package middleware ...
package middleware

import (
	"context"
	"net/http"
)

// SessionHeader carries the authenticated account id. It is set by the
// auth gateway in front of the service; the value is trusted as-is.
const SessionHeader = "X-Session-Account"

type sessionKey struct{}

// Session extracts the session account from the request and puts it into
// the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if account := r.Header.Get(SessionHeader); account != "" {
			r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, account))
		}

		next.ServeHTTP(w, r)
	})
}

// SessionAccount returns the authenticated account id, if any.
func SessionAccount(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(sessionKey{}).(string)
	return account, ok
}
