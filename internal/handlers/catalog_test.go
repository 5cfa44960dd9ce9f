package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gdg-garage/travel-planner-api/internal/catalog"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"github.com/gdg-garage/travel-planner-api/internal/repository"
	"github.com/gdg-garage/travel-planner-api/internal/testutil"
)

func TestCatalogFixtures(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Accommodations", func(t *testing.T) {
		resp := env.api.Get("/accommodations")
		expectStatus(t, resp, http.StatusOK)
		if list := decode[[]models.Accommodation](t, resp); len(list) != 5 {
			t.Errorf("expected 5 accommodations, got %d", len(list))
		}

		resp = env.api.Get("/accommodations?type=Resort&minRating=4")
		expectStatus(t, resp, http.StatusOK)
		if list := decode[[]models.Accommodation](t, resp); len(list) != 3 {
			t.Errorf("expected 3 rated resorts, got %d", len(list))
		}

		resp = env.api.Get("/accommodations/77")
		expectStatus(t, resp, http.StatusOK)
		if got := decode[models.Accommodation](t, resp); got.ID != 77 || got.Name != "Sample Hotel" {
			t.Errorf("unexpected sample record %+v", got)
		}

		expectStatus(t, env.api.Get("/accommodations?minRating=9"), http.StatusUnprocessableEntity)
	})

	t.Run("Transportation", func(t *testing.T) {
		resp := env.api.Get("/transportation?available=true")
		expectStatus(t, resp, http.StatusOK)
		if list := decode[[]models.Transportation](t, resp); len(list) != 5 {
			t.Errorf("expected 5 available options, got %d", len(list))
		}

		resp = env.api.Get("/transportation?available=false")
		expectStatus(t, resp, http.StatusOK)
		if list := decode[[]models.Transportation](t, resp); len(list) != 0 {
			t.Errorf("expected no unavailable options, got %d", len(list))
		}

		expectStatus(t, env.api.Get("/transportation?available=maybe"), http.StatusUnprocessableEntity)
	})

	t.Run("LocalServices", func(t *testing.T) {
		resp := env.api.Get("/local-services?type=Tour%20Guide")
		expectStatus(t, resp, http.StatusOK)
		if list := decode[[]models.LocalService](t, resp); len(list) != 2 {
			t.Errorf("expected 2 tour guides, got %d", len(list))
		}
	})

	t.Run("Expenses", func(t *testing.T) {
		resp := env.api.Get("/expenses/trip/4")
		expectStatus(t, resp, http.StatusOK)
		list := decode[[]models.Expense](t, resp)
		if len(list) != 5 {
			t.Fatalf("expected 5 expenses, got %d", len(list))
		}
		for _, e := range list {
			if e.TripID != 4 || e.Date.String() != "2025-03-14" {
				t.Errorf("unexpected expense %+v", e)
			}
		}

		resp = env.api.Get("/expenses/trip/4?minAmount=2500")
		expectStatus(t, resp, http.StatusOK)
		if list := decode[[]models.Expense](t, resp); len(list) != 3 {
			t.Errorf("expected 3 expenses above 2500, got %d", len(list))
		}

		resp = env.api.Post("/expenses", map[string]any{"tripId": 4, "category": "Food", "amount": 12.5})
		expectStatus(t, resp, http.StatusOK)
		if !strings.Contains(resp.Body.String(), `"amount":12.5`) {
			t.Errorf("expected amount as a JSON number, got %s", resp.Body.String())
		}
		created := decode[models.Expense](t, resp)
		if created.ID != uint(fixedNow.UnixMilli()) {
			t.Errorf("expected timestamp id %d, got %d", fixedNow.UnixMilli(), created.ID)
		}
		if created.Date.String() != "2025-03-14" || created.Amount.String() != "12.5" {
			t.Errorf("unexpected created expense %+v", created)
		}

		expectStatus(t, env.api.Post("/expenses", map[string]any{"category": "Food", "amount": -1}), http.StatusUnprocessableEntity)
		expectStatus(t, env.api.Post("/expenses", map[string]any{"category": "Food", "amount": 0.001}), http.StatusBadRequest)
	})
}

func TestCatalogStore(t *testing.T) {
	db := testutil.NewDB(t)
	store := catalog.NewStore(repository.NewCatalogRepository(db), testutil.Logger())
	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	env := newTestEnvWithCatalog(t, store)

	resp := env.api.Get("/accommodations/2")
	expectStatus(t, resp, http.StatusOK)
	if got := decode[models.Accommodation](t, resp); got.Name != "Cox's Bazar Resort" {
		t.Errorf("expected stored record, got %+v", got)
	}

	expectStatus(t, env.api.Get("/accommodations/999"), http.StatusNotFound)
	expectStatus(t, env.api.Get("/expenses/999"), http.StatusNotFound)

	resp = env.api.Post("/expenses", map[string]any{"tripId": 1, "category": "Hotel", "amount": 4200})
	expectStatus(t, resp, http.StatusOK)
	created := decode[models.Expense](t, resp)

	resp = env.api.Get("/expenses/" + itoa(created.ID))
	expectStatus(t, resp, http.StatusOK)
	if got := decode[models.Expense](t, resp); got.Category != "Hotel" {
		t.Errorf("expected persisted expense, got %+v", got)
	}

	expectStatus(t, env.api.Post("/expenses", map[string]any{"tripId": 1, "category": "Ferry", "amount": 0.004}), http.StatusBadRequest)
	var count int64
	if err := db.Model(&models.Expense{}).Where("category = ?", "Ferry").Count(&count).Error; err != nil {
		t.Fatalf("count expenses: %v", err)
	}
	if count != 0 {
		t.Errorf("expected rejected amount not to be stored, found %d", count)
	}
}
