package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jthomsen/motorlot/internal/domain"
)

type classificationRepository struct {
	db *gorm.DB
}

func NewClassificationRepository(db *gorm.DB) *classificationRepository {
	return &classificationRepository{db: db}
}

func (r *classificationRepository) Create(ctx context.Context, classification *domain.Classification) error {
	return r.db.WithContext(ctx).Create(classification).Error
}

func (r *classificationRepository) GetAll(ctx context.Context) ([]domain.Classification, error) {
	var classifications []domain.Classification
	err := r.db.WithContext(ctx).Order("name ASC").Find(&classifications).Error
	if err != nil {
		return nil, err
	}
	return classifications, nil
}

func (r *classificationRepository) GetByID(ctx context.Context, id int) (*domain.Classification, error) {
	var classification domain.Classification
	err := r.db.WithContext(ctx).First(&classification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClassificationNotFound
		}
		return nil, err
	}
	return &classification, nil
}
