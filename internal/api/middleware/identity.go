package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/jthomsen/motorlot/internal/auth"
)

type contextKey string

const claimsKey contextKey = "sessionClaims"

// SessionCookie is the name of the cookie carrying the signed session
// token.
const SessionCookie = "jwt"

// Identity decodes the session cookie on every request. A valid token
// puts the claims into the request context; a present-but-invalid
// token clears the cookie and the request proceeds anonymously. No
// cookie means anonymous with no side effect.
func Identity(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims returns the decoded session claims, or false when the
// request is anonymous.
func GetClaims(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.SessionClaims)
	return claims, ok
}

// SetSessionCookie stores a freshly issued token. HttpOnly always, the
// Secure flag everywhere except local development.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie (logout, or an invalid
// token observed by Identity).
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
