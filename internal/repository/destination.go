package repository

import (
	"context"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"gorm.io/gorm"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) FindAll(ctx context.Context) ([]models.Destination, error) {
	var destinations []models.Destination
	if err := r.db.WithContext(ctx).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id uint) (*models.Destination, error) {
	return first[models.Destination](r.db.WithContext(ctx), id)
}

func (r *DestinationRepository) FindByNameContaining(ctx context.Context, name string) ([]models.Destination, error) {
	var destinations []models.Destination
	if err := whereContains(r.db.WithContext(ctx), "name", name).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByLocationContaining(ctx context.Context, location string) ([]models.Destination, error) {
	var destinations []models.Destination
	if err := whereContains(r.db.WithContext(ctx), "location", location).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

// UpdateFields writes name, location and description.
func (r *DestinationRepository) UpdateFields(ctx context.Context, destination *models.Destination) error {
	return r.db.WithContext(ctx).
		Model(destination).
		Select("name", "location", "description").
		Updates(destination).Error
}

func (r *DestinationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Destination{}, id).Error
}
