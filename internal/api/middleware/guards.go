package middleware

import (
	"net/http"

	"github.com/jthomsen/motorlot/internal/api/flash"
	"github.com/jthomsen/motorlot/internal/auth"
)

// RequireAuthenticated redirects anonymous requests to the login page
// with a notice. Everything else proceeds.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := GetClaims(r.Context())
		if auth.Classify(claims) == auth.Anonymous {
			flash.Notice(w, "Please log in.")
			http.Redirect(w, r, "/account/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePrivileged redirects any request below Privileged (Employee
// or Admin) to the login page with an error notice. Protected content
// is never partially rendered.
func RequirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := GetClaims(r.Context())
		if auth.Classify(claims) != auth.Privileged {
			flash.Error(w, "You are not authorized to manage inventory. Please log in with an employee account.")
			http.Redirect(w, r, "/account/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
