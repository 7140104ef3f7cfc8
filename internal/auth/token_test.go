package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomsen/motorlot/internal/auth"
	"github.com/jthomsen/motorlot/internal/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:           uuid.New(),
		FirstName:    "Pat",
		LastName:     "Morrow",
		Email:        "pat@example.com",
		PasswordHash: "$2a$10$notactuallyahash",
		Role:         domain.RoleEmployee,
	}
}

func TestTokens_IssueVerify(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	account := testAccount()

	token, err := tokens.Issue(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, account.FirstName, claims.FirstName)
	assert.Equal(t, account.LastName, claims.LastName)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Role, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokens_VerifyExpired(t *testing.T) {
	tokens := auth.NewTokens("test-secret", -time.Minute)

	token, err := tokens.Issue(testAccount())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_VerifyTampered(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	token, err := tokens.Issue(testAccount())
	require.NoError(t, err)

	// Flip the final signature byte.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = tokens.Verify(string(tampered))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_VerifyWrongSecret(t *testing.T) {
	issuer := auth.NewTokens("secret-one", time.Hour)
	verifier := auth.NewTokens("secret-two", time.Hour)

	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokens_VerifyGarbage(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(bad)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", bad)
	}
}
