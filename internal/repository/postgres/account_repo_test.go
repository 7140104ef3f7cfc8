package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomsen/motorlot/internal/domain"
	"github.com/jthomsen/motorlot/internal/repository/postgres"
	"github.com/jthomsen/motorlot/internal/testutil"
)

func TestAccountRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account := &domain.Account{
		ID:           uuid.New(),
		FirstName:    "Basil",
		LastName:     "Frank",
		Email:        "basil@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         domain.RoleClient,
	}

	require.NoError(t, repo.Create(ctx, account))

	got, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Email, got.Email)
	assert.Equal(t, domain.RoleClient, got.Role)
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().
		WithEmail("lookup@example.com").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{
			name:  "exact match",
			email: "lookup@example.com",
		},
		{
			// Emails are stored lowercased and compared case-insensitively.
			name:  "mixed case",
			email: "LookUp@Example.COM",
		},
		{
			name:  "surrounding whitespace",
			email: "  lookup@example.com ",
		},
		{
			name:    "unknown email",
			email:   "missing@example.com",
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByEmail(ctx, tt.email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, account.ID, got.ID)
		})
	}
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_UpdateProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().
		WithName("Before", "Update").
		WithEmail("before@example.com").
		Build(t, testDB.DB)

	updated, err := repo.UpdateProfile(ctx, account.ID, "After", "Update", "after@example.com")
	require.NoError(t, err)
	assert.Equal(t, "After", updated.FirstName)
	assert.Equal(t, "after@example.com", updated.Email)
	assert.Equal(t, account.PasswordHash, updated.PasswordHash, "profile update must not touch the hash")

	_, err = repo.UpdateProfile(ctx, uuid.New(), "No", "Body", "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_UpdatePassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	updated, err := repo.UpdatePassword(ctx, account.ID, "replacement-hash")
	require.NoError(t, err)
	assert.Equal(t, "replacement-hash", updated.PasswordHash)
	assert.Equal(t, account.Email, updated.Email)

	_, err = repo.UpdatePassword(ctx, uuid.New(), "replacement-hash")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
