package service

import (
	"context"
	"strings"

	"github.com/jthomsen/motorlot/internal/domain"
	"github.com/jthomsen/motorlot/internal/repository"
	"github.com/jthomsen/motorlot/internal/search"
)

type InventoryService struct {
	classificationRepo repository.ClassificationRepository
	vehicleRepo        repository.VehicleRepository
}

func NewInventoryService(classificationRepo repository.ClassificationRepository, vehicleRepo repository.VehicleRepository) *InventoryService {
	return &InventoryService{
		classificationRepo: classificationRepo,
		vehicleRepo:        vehicleRepo,
	}
}

func (s *InventoryService) Classifications(ctx context.Context) ([]domain.Classification, error) {
	return s.classificationRepo.GetAll(ctx)
}

func (s *InventoryService) Classification(ctx context.Context, id int) (*domain.Classification, error) {
	return s.classificationRepo.GetByID(ctx, id)
}

func (s *InventoryService) AddClassification(ctx context.Context, name string) (*domain.Classification, error) {
	name = strings.TrimSpace(name)
	existing, err := s.classificationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return nil, domain.ErrClassificationExists
		}
	}
	classification := &domain.Classification{Name: name}
	if err := s.classificationRepo.Create(ctx, classification); err != nil {
		return nil, err
	}
	return classification, nil
}

func (s *InventoryService) All(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.GetAll(ctx)
}

func (s *InventoryService) ByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	return s.vehicleRepo.GetByClassification(ctx, classificationID)
}

func (s *InventoryService) ByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

type VehicleInput struct {
	Make             string
	Model            string
	Year             int
	Description      string
	Image            string
	Thumbnail        string
	Price            int
	Miles            int
	Color            string
	ClassificationID int
}

func (s *InventoryService) Add(ctx context.Context, input VehicleInput) (*domain.Vehicle, error) {
	if _, err := s.classificationRepo.GetByID(ctx, input.ClassificationID); err != nil {
		return nil, err
	}
	vehicle := &domain.Vehicle{
		Make:             input.Make,
		Model:            input.Model,
		Year:             input.Year,
		Description:      input.Description,
		Image:            input.Image,
		Thumbnail:        input.Thumbnail,
		Price:            input.Price,
		Miles:            input.Miles,
		Color:            input.Color,
		ClassificationID: input.ClassificationID,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *InventoryService) Update(ctx context.Context, id int, input VehicleInput) (*domain.Vehicle, error) {
	if _, err := s.classificationRepo.GetByID(ctx, input.ClassificationID); err != nil {
		return nil, err
	}
	vehicle := &domain.Vehicle{
		ID:               id,
		Make:             input.Make,
		Model:            input.Model,
		Year:             input.Year,
		Description:      input.Description,
		Image:            input.Image,
		Thumbnail:        input.Thumbnail,
		Price:            input.Price,
		Miles:            input.Miles,
		Color:            input.Color,
		ClassificationID: input.ClassificationID,
	}
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *InventoryService) Delete(ctx context.Context, id int) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Search filters a fresh inventory snapshot against the parsed
// criteria.
func (s *InventoryService) Search(ctx context.Context, criteria search.Criteria) ([]domain.Vehicle, error) {
	items, err := s.vehicleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(items, criteria), nil
}
