package repository

import (
	"context"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccommodationFilter narrows an accommodation listing. Zero fields match all.
type AccommodationFilter struct {
	Type      string
	MinRating int
	Name      string
}

type TransportationFilter struct {
	Type      string
	Provider  string
	Available *bool
}

type LocalServiceFilter struct {
	Type string
	Name string
}

type ExpenseFilter struct {
	Category  string
	From      *models.Date
	To        *models.Date
	MinAmount *decimal.Decimal
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindAccommodations(ctx context.Context, f AccommodationFilter) ([]models.Accommodation, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if f.Type != "" {
		tx = tx.Where("type = ?", f.Type)
	}
	if f.MinRating > 0 {
		tx = tx.Where("rating >= ?", f.MinRating)
	}
	if f.Name != "" {
		tx = whereContains(tx, "name", f.Name)
	}

	var out []models.Accommodation
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) FindAccommodation(ctx context.Context, id uint) (*models.Accommodation, error) {
	return first[models.Accommodation](r.db.WithContext(ctx), id)
}

func (r *CatalogRepository) FindTransportation(ctx context.Context, f TransportationFilter) ([]models.Transportation, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if f.Type != "" {
		tx = tx.Where("type = ?", f.Type)
	}
	if f.Provider != "" {
		tx = tx.Where("provider = ?", f.Provider)
	}
	if f.Available != nil {
		tx = tx.Where("availability = ?", *f.Available)
	}

	var out []models.Transportation
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) FindTransportationByID(ctx context.Context, id uint) (*models.Transportation, error) {
	return first[models.Transportation](r.db.WithContext(ctx), id)
}

func (r *CatalogRepository) FindLocalServices(ctx context.Context, f LocalServiceFilter) ([]models.LocalService, error) {
	tx := r.db.WithContext(ctx).Order("id")
	if f.Type != "" {
		tx = tx.Where("type = ?", f.Type)
	}
	if f.Name != "" {
		tx = whereContains(tx, "name", f.Name)
	}

	var out []models.LocalService
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) FindLocalService(ctx context.Context, id uint) (*models.LocalService, error) {
	return first[models.LocalService](r.db.WithContext(ctx), id)
}

// FindExpenses lists a trip's expenses. A zero tripID lists every trip's.
func (r *CatalogRepository) FindExpenses(ctx context.Context, tripID uint, f ExpenseFilter) ([]models.Expense, error) {
	tx := r.db.WithContext(ctx).Order("date, id")
	if tripID != 0 {
		tx = tx.Where("trip_id = ?", tripID)
	}
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.From != nil && f.To != nil {
		tx = tx.Where("date BETWEEN ? AND ?", *f.From, *f.To)
	} else if f.From != nil {
		tx = tx.Where("date >= ?", *f.From)
	} else if f.To != nil {
		tx = tx.Where("date <= ?", *f.To)
	}
	if f.MinAmount != nil {
		tx = tx.Where("amount > ?", *f.MinAmount)
	}

	var out []models.Expense
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) FindExpense(ctx context.Context, id uint) (*models.Expense, error) {
	return first[models.Expense](r.db.WithContext(ctx), id)
}

func (r *CatalogRepository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *CatalogRepository) CountAccommodations(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Accommodation{}).Count(&n).Error
	return n, err
}

func (r *CatalogRepository) CountTransportation(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Transportation{}).Count(&n).Error
	return n, err
}

func (r *CatalogRepository) CountLocalServices(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.LocalService{}).Count(&n).Error
	return n, err
}

// SeedAccommodations inserts the rows in one batch.
func (r *CatalogRepository) SeedAccommodations(ctx context.Context, rows []models.Accommodation) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *CatalogRepository) SeedTransportation(ctx context.Context, rows []models.Transportation) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *CatalogRepository) SeedLocalServices(ctx context.Context, rows []models.LocalService) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}
