package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/shopspring/decimal"
)

// Fixtures is the canned catalog. Get returns a fixed sample record carrying
// the requested id whether or not a listed record has that id, and
// CreateExpense stores nothing.
type Fixtures struct {
	now func() time.Time
}

func NewFixtures() *Fixtures {
	return &Fixtures{now: time.Now}
}

// NewFixturesAt pins the clock used for expense ids and dates.
func NewFixturesAt(now func() time.Time) *Fixtures {
	return &Fixtures{now: now}
}

func FixtureAccommodations() []models.Accommodation {
	return []models.Accommodation{
		accommodation(1, "Hotel Sea Crown", "Resort", 8000, 4),
		accommodation(2, "Cox's Bazar Resort", "Resort", 12000, 5),
		accommodation(3, "Sylhet Guest House", "Hotel", 5000, 3),
		accommodation(4, "Sajek Hill Resort", "Resort", 15000, 4),
		accommodation(5, "Sundarban Lodge", "Lodge", 6000, 3),
	}
}

func FixtureTransportation() []models.Transportation {
	return []models.Transportation{
		transportation(1, "Bus", "Green Line", 1200, true),
		transportation(2, "Train", "Bangladesh Railway", 800, true),
		transportation(3, "Flight", "Biman Bangladesh", 8000, true),
		transportation(4, "Car Rental", "Rental Cars BD", 3000, true),
		transportation(5, "Boat", "River Transport", 500, true),
	}
}

func FixtureLocalServices() []models.LocalService {
	return []models.LocalService{
		{ID: 1, Name: "Cox's Bazar Guide", Type: "Tour Guide", Contact: "+880-1234567890"},
		{ID: 2, Name: "Sylhet Tea Tours", Type: "Tour Guide", Contact: "+880-1234567891"},
		{ID: 3, Name: "Sajek Adventure", Type: "Adventure Guide", Contact: "+880-1234567892"},
		{ID: 4, Name: "Sundarban Wildlife Tours", Type: "Wildlife Guide", Contact: "+880-1234567893"},
		{ID: 5, Name: "Dhaka City Tours", Type: "City Guide", Contact: "+880-1234567894"},
	}
}

func (f *Fixtures) ListAccommodations(_ context.Context, filter AccommodationFilter) ([]models.Accommodation, error) {
	var out []models.Accommodation
	for _, a := range FixtureAccommodations() {
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if a.Rating < filter.MinRating {
			continue
		}
		if !containsFold(a.Name, filter.Name) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *Fixtures) GetAccommodation(_ context.Context, id uint) (*models.Accommodation, error) {
	a := accommodation(id, "Sample Hotel", "Hotel", 8000, 4)
	return &a, nil
}

func (f *Fixtures) ListTransportation(_ context.Context, filter TransportationFilter) ([]models.Transportation, error) {
	var out []models.Transportation
	for _, t := range FixtureTransportation() {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}
		if filter.Provider != "" && t.Provider != filter.Provider {
			continue
		}
		if filter.Available != nil && t.Availability != *filter.Available {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *Fixtures) GetTransportation(_ context.Context, id uint) (*models.Transportation, error) {
	t := transportation(id, "Bus", "Sample Transport", 1200, true)
	return &t, nil
}

func (f *Fixtures) ListLocalServices(_ context.Context, filter LocalServiceFilter) ([]models.LocalService, error) {
	var out []models.LocalService
	for _, s := range FixtureLocalServices() {
		if filter.Type != "" && s.Type != filter.Type {
			continue
		}
		if !containsFold(s.Name, filter.Name) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *Fixtures) GetLocalService(_ context.Context, id uint) (*models.LocalService, error) {
	return &models.LocalService{ID: id, Name: "Sample Guide", Type: "Tour Guide", Contact: "+880-1234567890"}, nil
}

// ListExpensesByTrip returns five canned expenses dated today for any trip.
func (f *Fixtures) ListExpensesByTrip(_ context.Context, tripID uint, filter ExpenseFilter) ([]models.Expense, error) {
	today := models.DateOf(f.now())
	canned := []models.Expense{
		expense(1, tripID, "Hotel", "5000.00", today),
		expense(2, tripID, "Transport", "15000.00", today),
		expense(3, tripID, "Food", "2000.00", today),
		expense(4, tripID, "Activities", "3000.00", today),
		expense(5, tripID, "Shopping", "2500.00", today),
	}

	var out []models.Expense
	for _, e := range canned {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && filter.To.Before(e.Date) {
			continue
		}
		if filter.MinAmount != nil && !e.Amount.GreaterThan(*filter.MinAmount) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *Fixtures) GetExpense(_ context.Context, id uint) (*models.Expense, error) {
	e := expense(id, 1, "Misc", "1000.00", models.DateOf(f.now()))
	return &e, nil
}

// CreateExpense assigns a millisecond-timestamp id and today's date. The
// record is returned but not kept.
func (f *Fixtures) CreateExpense(_ context.Context, e models.Expense) (*models.Expense, error) {
	if !e.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	now := f.now()
	e.ID = uint(now.UnixMilli())
	e.Date = models.DateOf(now)
	return &e, nil
}

func accommodation(id uint, name, kind string, price int64, rating int) models.Accommodation {
	return models.Accommodation{
		ID:            id,
		Name:          name,
		Type:          kind,
		PricePerNight: decimal.NewFromInt(price),
		Rating:        rating,
	}
}

func transportation(id uint, kind, provider string, price int64, available bool) models.Transportation {
	return models.Transportation{
		ID:           id,
		Type:         kind,
		Provider:     provider,
		Price:        decimal.NewFromInt(price),
		Availability: available,
	}
}

func expense(id, tripID uint, category, amount string, date models.Date) models.Expense {
	return models.Expense{
		ID:       id,
		TripID:   tripID,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
