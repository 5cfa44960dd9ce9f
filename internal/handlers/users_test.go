package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gdg-garage/travel-planner-api/internal/auth"
	"github.com/gdg-garage/travel-planner-api/internal/models"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (e *testEnv) register(t *testing.T, name, email, password string) models.User {
	t.Helper()
	resp := e.api.Post("/auth/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	expectStatus(t, resp, http.StatusOK)
	return decode[models.User](t, resp)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	resp := env.api.Post("/auth/register", map[string]any{
		"name":     "Nadia",
		"email":    "Nadia@Example.com",
		"password": "secret1",
	})
	expectStatus(t, resp, http.StatusOK)
	if strings.Contains(strings.ToLower(resp.Body.String()), "password") {
		t.Errorf("response leaked a credential field: %s", resp.Body.String())
	}
	if user := decode[models.User](t, resp); user.Email != "nadia@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}

	t.Run("Duplicate", func(t *testing.T) {
		resp := env.api.Post("/auth/register", map[string]any{
			"email":    "nadia@example.com",
			"password": "another1",
		})
		expectStatus(t, resp, http.StatusBadRequest)
		if !strings.Contains(resp.Body.String(), "Registration failed") {
			t.Errorf("unexpected body %s", resp.Body.String())
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {
		resp := env.api.Post("/auth/register", map[string]any{
			"email":    "short@example.com",
			"password": "123",
		})
		expectStatus(t, resp, http.StatusBadRequest)
		if !strings.Contains(resp.Body.String(), "Registration failed") {
			t.Errorf("unexpected body %s", resp.Body.String())
		}
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "Tanvir", "x@x.com", "right-password")

	t.Run("FailuresLookAlike", func(t *testing.T) {
		wrong := env.api.Post("/auth/login", map[string]any{"email": "x@x.com", "password": "wrong"})
		missing := env.api.Post("/auth/login", map[string]any{"email": "missing@x.com", "password": "any"})

		expectStatus(t, wrong, http.StatusBadRequest)
		expectStatus(t, missing, http.StatusBadRequest)
		if wrong.Body.String() != missing.Body.String() {
			t.Errorf("expected identical bodies, got %q and %q", wrong.Body.String(), missing.Body.String())
		}
		if !strings.Contains(wrong.Body.String(), "Invalid credentials") {
			t.Errorf("unexpected body %s", wrong.Body.String())
		}
		if len(wrong.Result().Cookies()) != 0 {
			t.Error("expected no cookie on a failed login")
		}
	})

	t.Run("Success", func(t *testing.T) {
		resp := env.api.Post("/auth/login", map[string]any{"email": "X@x.com", "password": "right-password"})
		expectStatus(t, resp, http.StatusOK)
		if strings.Contains(strings.ToLower(resp.Body.String()), "password") {
			t.Errorf("response leaked a credential field: %s", resp.Body.String())
		}

		var token string
		for _, c := range resp.Result().Cookies() {
			if c.Name == auth.CookieName {
				token = c.Value
			}
		}
		if token == "" {
			t.Fatal("expected auth_token cookie")
		}

		resp = env.api.Get("/me", "Cookie: "+auth.CookieName+"="+token)
		expectStatus(t, resp, http.StatusOK)
		if me := decode[models.User](t, resp); me.ID != user.ID {
			t.Errorf("expected user %d, got %d", user.ID, me.ID)
		}
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "Mitu", "mitu@example.com", "secret1")
	trip := env.createTrip(t, "Srimangal", "2024-09-01", "2024-09-03")
	expectStatus(t, env.api.Put("/trips/"+itoa(trip.ID)+"/users/"+itoa(user.ID)), http.StatusOK)

	token, err := env.auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	cookie := "Cookie: " + auth.CookieName + "=" + token

	expectStatus(t, env.api.Get("/me"), http.StatusUnauthorized)
	expectStatus(t, env.api.Get("/me/trips"), http.StatusUnauthorized)
	expectStatus(t, env.api.Get("/me", "Cookie: "+auth.CookieName+"=garbage"), http.StatusUnauthorized)

	resp := env.api.Get("/me/trips", cookie)
	expectStatus(t, resp, http.StatusOK)
	if list := decode[[]models.Trip](t, resp); len(list) != 1 || list[0].ID != trip.ID {
		t.Errorf("expected trip %d, got %+v", trip.ID, list)
	}
}

func TestUsers(t *testing.T) {
	env := newTestEnv(t)
	first := env.register(t, "One", "one@example.com", "secret1")
	env.register(t, "Two", "two@example.com", "secret2")

	resp := env.api.Get("/users")
	expectStatus(t, resp, http.StatusOK)
	if list := decode[[]models.User](t, resp); len(list) != 2 {
		t.Errorf("expected 2 users, got %d", len(list))
	}

	resp = env.api.Put("/users/"+itoa(first.ID), map[string]any{"name": "Uno", "email": "uno@example.com"})
	expectStatus(t, resp, http.StatusOK)
	if got := decode[models.User](t, resp); got.Name != "Uno" || got.Email != "uno@example.com" {
		t.Errorf("unexpected update result %+v", got)
	}

	expectStatus(t, env.api.Put("/users/"+itoa(first.ID), map[string]any{"email": "two@example.com"}), http.StatusBadRequest)
	expectStatus(t, env.api.Put("/users/999", map[string]any{"email": "new@example.com"}), http.StatusNotFound)

	expectStatus(t, env.api.Delete("/users/"+itoa(first.ID)), http.StatusNoContent)
	expectStatus(t, env.api.Get("/users/"+itoa(first.ID)), http.StatusNotFound)
	expectStatus(t, env.api.Delete("/users/"+itoa(first.ID)), http.StatusNoContent)

	again := env.register(t, "Uno", "uno@example.com", "secret3")
	if again.ID == first.ID {
		t.Errorf("expected a new user id after re-registering, got %d", again.ID)
	}
}
