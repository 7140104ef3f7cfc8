package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jthomsen/motorlot/internal/auth"
	"github.com/jthomsen/motorlot/internal/config"
	"github.com/jthomsen/motorlot/internal/domain"
	"github.com/jthomsen/motorlot/internal/repository"
)

// ErrInvalidCredentials is the single login failure. Unknown email and
// wrong password both map here so the login path cannot be used to
// enumerate registered addresses.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	accountRepo repository.AccountRepository
	hasher      *auth.Hasher
	tokens      *auth.Tokens
}

func NewAuthService(accountRepo repository.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		hasher:      auth.NewHasher(cfg.BcryptCost),
		tokens:      auth.NewTokens(cfg.JWTSecret, cfg.SessionTTL),
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a Client account. Duplicate email yields
// domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	if _, err := s.accountRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a session token. The lookup
// miss and the hash mismatch are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Check(account.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Account fetches the account behind a session for the management page.
func (s *AuthService) Account(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfile mutates name/email and re-issues the session token so
// the cookie matches storage again.
func (s *AuthService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.Account, string, error) {
	if other, err := s.accountRepo.GetByEmail(ctx, input.Email); err == nil && other.ID != id {
		return nil, "", domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, "", err
	}

	account, err := s.accountRepo.UpdateProfile(ctx, id, input.FirstName, input.LastName, input.Email)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// ChangePassword stores a fresh hash and re-issues the session token.
func (s *AuthService) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) (*domain.Account, string, error) {
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, "", err
	}
	account, err := s.accountRepo.UpdatePassword(ctx, id, hash)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Tokens exposes the token issuer/verifier for the identity middleware.
func (s *AuthService) Tokens() *auth.Tokens {
	return s.tokens
}
