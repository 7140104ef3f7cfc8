package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jthomsen/motorlot/internal/domain"
)

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *vehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).Order("id ASC").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) GetByClassification(ctx context.Context, classificationID int) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	err := r.db.WithContext(ctx).
		Where("classification_id = ?", classificationID).
		Order("id ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	res := r.db.WithContext(ctx).Model(&domain.Vehicle{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]interface{}{
			"make":              vehicle.Make,
			"model":             vehicle.Model,
			"year":              vehicle.Year,
			"description":       vehicle.Description,
			"image":             vehicle.Image,
			"thumbnail":         vehicle.Thumbnail,
			"price":             vehicle.Price,
			"miles":             vehicle.Miles,
			"color":             vehicle.Color,
			"classification_id": vehicle.ClassificationID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
