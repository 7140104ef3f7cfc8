package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jthomsen/motorlot/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (*domain.Account, error)
}

type ClassificationRepository interface {
	Create(ctx context.Context, classification *domain.Classification) error
	GetAll(ctx context.Context) ([]domain.Classification, error)
	GetByID(ctx context.Context, id int) (*domain.Classification, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
	GetAll(ctx context.Context) ([]domain.Vehicle, error)
	GetByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int) error
}

type Repositories struct {
	Account        AccountRepository
	Classification ClassificationRepository
	Vehicle        VehicleRepository
}
