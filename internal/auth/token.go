// Package auth holds the authentication core: password hashing, signed
// session tokens and the access policy over decoded claims.
//
// Sessions are stateless. A token is trusted only while its signature
// verifies and it has not expired; there is no server-side revocation
// list, so logout is purely a client-side cookie clear and a stale
// token is only ever replaced by the next legitimate re-issue.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jthomsen/motorlot/internal/domain"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, expiry. Callers treat all of them as anonymous.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the account identity embedded in a session token.
// Everything except the password hash.
type SessionClaims struct {
	AccountID uuid.UUID   `json:"accountId"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 session tokens with a server-held
// secret. Construct once at startup and share; it is immutable.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// TTL returns the token lifetime, which is also the cookie max-age.
func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

// Issue signs fresh claims for the account. Handlers call this at
// login and again after any identity-relevant mutation so the cookie
// stays consistent with storage.
func (t *Tokens) Issue(account *domain.Account) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		AccountID: account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Any failure yields ErrInvalidToken and the request is anonymous.
func (t *Tokens) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
