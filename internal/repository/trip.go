package repository

import (
	"context"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) FindAll(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.WithContext(ctx).Preload("Users").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) FindByID(ctx context.Context, id uint) (*models.Trip, error) {
	return first[models.Trip](r.db.WithContext(ctx).Preload("Users"), id)
}

// FindInDateRange returns trips lying entirely inside [start, end].
func (r *TripRepository) FindInDateRange(ctx context.Context, start, end models.Date) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.WithContext(ctx).
		Preload("Users").
		Where("start_date >= ? AND end_date <= ?", start, end).
		Order("start_date").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// FindByStartDateBetween returns trips starting inside [start, end].
func (r *TripRepository) FindByStartDateBetween(ctx context.Context, start, end models.Date) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.WithContext(ctx).
		Preload("Users").
		Where("start_date BETWEEN ? AND ?", start, end).
		Order("start_date").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// FindByMember returns the trips whose membership contains userID.
func (r *TripRepository) FindByMember(ctx context.Context, userID uint) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.WithContext(ctx).
		Preload("Users").
		Where("id IN (?)", r.db.Model(&models.TripUser{}).Select("trip_id").Where("user_id = ?", userID)).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
}

// UpdateFields writes the trip's editable columns and nothing else.
// Membership rows are never written here, whatever trip.Users holds.
func (r *TripRepository) UpdateFields(ctx context.Context, trip *models.Trip) error {
	return r.db.WithContext(ctx).
		Model(trip).
		Select("title", "start_date", "end_date", "total_budget").
		Omit(clause.Associations).
		Updates(trip).Error
}

func (r *TripRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Trip{}, id).Error
}

// AddMember links the user to the trip. Linking an existing member is a no-op.
func (r *TripRepository) AddMember(ctx context.Context, trip *models.Trip, user *models.User) error {
	return r.db.WithContext(ctx).Model(trip).Association("Users").Append(user)
}

// RemoveMember unlinks the user. Unlinking a non-member is a no-op.
func (r *TripRepository) RemoveMember(ctx context.Context, trip *models.Trip, user *models.User) error {
	return r.db.WithContext(ctx).Model(trip).Association("Users").Delete(user)
}

// RemoveAllMemberships drops every membership row for userID.
func (r *TripRepository) RemoveAllMemberships(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.TripUser{}).Error
}
