package service

import (
	"github.com/jthomsen/motorlot/internal/config"
	"github.com/jthomsen/motorlot/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Inventory *InventoryService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Account, cfg),
		Inventory: NewInventoryService(repos.Classification, repos.Vehicle),
	}
}
