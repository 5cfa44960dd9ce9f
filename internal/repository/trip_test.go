package repository

import (
	"context"
	"testing"
	"time"

	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrip(t *testing.T, repo *TripRepository, title string, start, end models.Date) *models.Trip {
	t.Helper()
	trip := &models.Trip{TripFields: models.TripFields{Title: title, StartDate: start, EndDate: end}}
	require.NoError(t, repo.Create(context.Background(), trip))
	return trip
}

func TestTripRepository_FindInDateRange(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	inside := seedTrip(t, repo, "Inside", models.NewDate(2024, time.June, 1), models.NewDate(2024, time.June, 10))
	seedTrip(t, repo, "Overlaps start", models.NewDate(2024, time.April, 25), models.NewDate(2024, time.May, 3))
	seedTrip(t, repo, "Overlaps end", models.NewDate(2024, time.June, 28), models.NewDate(2024, time.July, 2))
	edges := seedTrip(t, repo, "Exact edges", models.NewDate(2024, time.May, 1), models.NewDate(2024, time.June, 30))

	trips, err := repo.FindInDateRange(ctx, models.NewDate(2024, time.May, 1), models.NewDate(2024, time.June, 30))
	require.NoError(t, err)

	var ids []uint
	for _, tr := range trips {
		ids = append(ids, tr.ID)
	}
	assert.ElementsMatch(t, []uint{inside.ID, edges.ID}, ids)
}

func TestTripRepository_FindByStartDateBetween(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTripRepository(db)

	seedTrip(t, repo, "Early", models.NewDate(2024, time.March, 1), models.NewDate(2024, time.March, 5))
	late := seedTrip(t, repo, "Late", models.NewDate(2024, time.June, 29), models.NewDate(2024, time.July, 9))

	trips, err := repo.FindByStartDateBetween(context.Background(), models.NewDate(2024, time.June, 1), models.NewDate(2024, time.June, 30))
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, late.ID, trips[0].ID)
}

func TestTripRepository_Membership(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	alice := &models.User{Name: "Alice", Email: "alice@example.com"}
	bob := &models.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	coast := seedTrip(t, repo, "Coast", models.NewDate(2024, time.June, 1), models.NewDate(2024, time.June, 5))
	hills := seedTrip(t, repo, "Hills", models.NewDate(2024, time.July, 1), models.NewDate(2024, time.July, 5))

	require.NoError(t, repo.AddMember(ctx, coast, alice))
	require.NoError(t, repo.AddMember(ctx, coast, alice))
	require.NoError(t, repo.AddMember(ctx, hills, alice))
	require.NoError(t, repo.AddMember(ctx, hills, bob))

	var rows int64
	db.Model(&models.TripUser{}).Where("trip_id = ? AND user_id = ?", coast.ID, alice.ID).Count(&rows)
	assert.Equal(t, int64(1), rows)

	aliceTrips, err := repo.FindByMember(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceTrips, 2)

	bobTrips, err := repo.FindByMember(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobTrips, 1)
	assert.Equal(t, hills.ID, bobTrips[0].ID)

	require.NoError(t, repo.RemoveMember(ctx, coast, bob))
	require.NoError(t, repo.RemoveMember(ctx, hills, bob))

	bobTrips, err = repo.FindByMember(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobTrips)

	require.NoError(t, repo.RemoveAllMemberships(ctx, alice.ID))
	aliceTrips, err = repo.FindByMember(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceTrips)
}

func TestTripRepository_UpdateFieldsKeepsMembers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTripRepository(db)
	ctx := context.Background()

	alice := &models.User{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(alice).Error)

	trip := seedTrip(t, repo, "Draft", models.NewDate(2024, time.June, 1), models.NewDate(2024, time.June, 5))
	require.NoError(t, repo.AddMember(ctx, trip, alice))

	budget := decimal.NewFromInt(1500)
	stale := &models.Trip{Model: models.Model{ID: trip.ID}}
	stale.TripFields = models.TripFields{
		Title:       "Final",
		StartDate:   models.NewDate(2024, time.June, 2),
		EndDate:     models.NewDate(2024, time.June, 6),
		TotalBudget: &budget,
	}
	require.NoError(t, repo.UpdateFields(ctx, stale))

	got, err := repo.FindByID(ctx, trip.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "2024-06-02", got.StartDate.String())
	require.NotNil(t, got.TotalBudget)
	assert.True(t, budget.Equal(*got.TotalBudget))
	require.Len(t, got.Users, 1)
	assert.Equal(t, alice.ID, got.Users[0].ID)
}

func TestTripRepository_FindByIDMissing(t *testing.T) {
	repo := NewTripRepository(testutil.NewDB(t))

	got, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, repo.Delete(context.Background(), 42))
}
