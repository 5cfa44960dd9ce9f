package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/repository"
)

// Store is the database-backed catalog.
type Store struct {
	repo   *repository.CatalogRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewStore(repo *repository.CatalogRepository, logger *slog.Logger) *Store {
	return &Store{repo: repo, logger: logger, now: time.Now}
}

func (s *Store) ListAccommodations(ctx context.Context, f AccommodationFilter) ([]models.Accommodation, error) {
	return s.repo.FindAccommodations(ctx, f)
}

func (s *Store) GetAccommodation(ctx context.Context, id uint) (*models.Accommodation, error) {
	return found(s.repo.FindAccommodation(ctx, id))
}

func (s *Store) ListTransportation(ctx context.Context, f TransportationFilter) ([]models.Transportation, error) {
	return s.repo.FindTransportation(ctx, f)
}

func (s *Store) GetTransportation(ctx context.Context, id uint) (*models.Transportation, error) {
	return found(s.repo.FindTransportationByID(ctx, id))
}

func (s *Store) ListLocalServices(ctx context.Context, f LocalServiceFilter) ([]models.LocalService, error) {
	return s.repo.FindLocalServices(ctx, f)
}

func (s *Store) GetLocalService(ctx context.Context, id uint) (*models.LocalService, error) {
	return found(s.repo.FindLocalService(ctx, id))
}

func (s *Store) ListExpensesByTrip(ctx context.Context, tripID uint, f ExpenseFilter) ([]models.Expense, error) {
	return s.repo.FindExpenses(ctx, tripID, f)
}

func (s *Store) GetExpense(ctx context.Context, id uint) (*models.Expense, error) {
	return found(s.repo.FindExpense(ctx, id))
}

// CreateExpense persists the expense. A missing date defaults to today.
func (s *Store) CreateExpense(ctx context.Context, e models.Expense) (*models.Expense, error) {
	if !e.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	e.ID = 0
	if e.Date.IsZero() {
		e.Date = models.DateOf(s.now())
	}
	if err := s.repo.CreateExpense(ctx, &e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	s.logger.Info("Expense recorded", "expenseID", e.ID, "tripID", e.TripID)
	return &e, nil
}

// Seed loads the fixture records into any empty catalog table.
func (s *Store) Seed(ctx context.Context) error {
	n, err := s.repo.CountAccommodations(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		rows := FixtureAccommodations()
		for i := range rows {
			rows[i].ID = 0
		}
		if err := s.repo.SeedAccommodations(ctx, rows); err != nil {
			return fmt.Errorf("seed accommodations: %w", err)
		}
		s.logger.Info("Seeded accommodations", "count", len(rows))
	}

	n, err = s.repo.CountTransportation(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		rows := FixtureTransportation()
		for i := range rows {
			rows[i].ID = 0
		}
		if err := s.repo.SeedTransportation(ctx, rows); err != nil {
			return fmt.Errorf("seed transportation: %w", err)
		}
		s.logger.Info("Seeded transportation", "count", len(rows))
	}

	n, err = s.repo.CountLocalServices(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		rows := FixtureLocalServices()
		for i := range rows {
			rows[i].ID = 0
		}
		if err := s.repo.SeedLocalServices(ctx, rows); err != nil {
			return fmt.Errorf("seed local services: %w", err)
		}
		s.logger.Info("Seeded local services", "count", len(rows))
	}

	return nil
}

func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}
