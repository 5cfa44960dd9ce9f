// Package catalog serves the accommodation, transportation, local service
// and expense listings. Fixtures answers from canned records; Store answers
// from the database. Both satisfy Catalog so either can back the handlers.
package catalog

import (
	"context"
	"errors"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/repository"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidAmount = errors.New("amount must be at least 0.01")
)

type (
	AccommodationFilter  = repository.AccommodationFilter
	TransportationFilter = repository.TransportationFilter
	LocalServiceFilter   = repository.LocalServiceFilter
	ExpenseFilter        = repository.ExpenseFilter
)

type Accommodations interface {
	ListAccommodations(ctx context.Context, f AccommodationFilter) ([]models.Accommodation, error)
	GetAccommodation(ctx context.Context, id uint) (*models.Accommodation, error)
}

type Transportation interface {
	ListTransportation(ctx context.Context, f TransportationFilter) ([]models.Transportation, error)
	GetTransportation(ctx context.Context, id uint) (*models.Transportation, error)
}

type LocalServices interface {
	ListLocalServices(ctx context.Context, f LocalServiceFilter) ([]models.LocalService, error)
	GetLocalService(ctx context.Context, id uint) (*models.LocalService, error)
}

type Expenses interface {
	ListExpensesByTrip(ctx context.Context, tripID uint, f ExpenseFilter) ([]models.Expense, error)
	GetExpense(ctx context.Context, id uint) (*models.Expense, error)
	CreateExpense(ctx context.Context, expense models.Expense) (*models.Expense, error)
}

type Catalog interface {
	Accommodations
	Transportation
	LocalServices
	Expenses
}

var (
	_ Catalog = (*Fixtures)(nil)
	_ Catalog = (*Store)(nil)
)
