package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func serve(a *Authenticator, req *http.Request) (*httptest.ResponseRecorder, uint, bool) {
	var (
		gotID uint
		gotOK bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	a.Session(next).ServeHTTP(rr, req)
	return rr, gotID, gotOK
}

func TestSession_SlidingRenewal(t *testing.T) {
	a := NewAuthenticator(testSecret, 24*time.Hour)

	t.Run("TokenRenewed", func(t *testing.T) {
		// 11h left is below half of the 24h lifetime.
		tokenString := signed(t, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(11 * time.Hour).Unix()})

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
		rr, userID, ok := serve(a, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if !ok || userID != 1 {
			t.Errorf("expected user 1 on context, got %d (%v)", userID, ok)
		}

		found := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				found = true
				if c.Value == tokenString {
					t.Errorf("expected new token value, but got the old one")
				}
			}
		}
		if !found {
			t.Errorf("expected new auth_token cookie to be set")
		}
	})

	t.Run("TokenNotRenewed", func(t *testing.T) {
		tokenString := signed(t, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(13 * time.Hour).Unix()})

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
		rr, _, ok := serve(a, req)

		if !ok {
			t.Error("expected user on context")
		}
		for _, c := range rr.Result().Cookies() {
			if c.Name == CookieName {
				t.Errorf("did not expect a new auth_token cookie to be set")
			}
		}
	})
}

func TestSession_Anonymous(t *testing.T) {
	a := NewAuthenticator(testSecret, time.Hour)

	t.Run("NoCookie", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/", nil)
		rr, _, ok := serve(a, req)
		if rr.Code != http.StatusOK || ok {
			t.Errorf("expected anonymous pass-through, got code %d ok=%v", rr.Code, ok)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewAuthenticator("other-secret", time.Hour)
		token, _ := other.GenerateToken(5)

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		_, _, ok := serve(a, req)
		if ok {
			t.Error("expected token signed with another secret to be ignored")
		}
	})

	t.Run("Expired", func(t *testing.T) {
		tokenString := signed(t, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(-time.Minute).Unix()})

		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
		_, _, ok := serve(a, req)
		if ok {
			t.Error("expected expired token to be ignored")
		}
	})
}

func TestParseToken_RoundTrip(t *testing.T) {
	a := NewAuthenticator(testSecret, time.Hour)

	cookie, err := a.SessionCookie(42)
	if err != nil {
		t.Fatalf("SessionCookie returned error: %v", err)
	}
	if !cookie.HttpOnly || cookie.Name != CookieName {
		t.Errorf("unexpected cookie attributes: %+v", cookie)
	}

	userID, expiry, err := a.ParseToken(cookie.Value)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}
	if time.Until(expiry) > time.Hour || time.Until(expiry) < 58*time.Minute {
		t.Errorf("unexpected expiry %v", expiry)
	}
}

func TestAuthorize(t *testing.T) {
	a := NewAuthenticator(testSecret, time.Hour)
	token, err := a.GenerateToken(9)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	t.Run("Cookie", func(t *testing.T) {
		userID, err := a.Authorize(context.Background(), "theme=dark; "+CookieName+"="+token)
		if err != nil || userID != 9 {
			t.Errorf("expected user 9, got %d (%v)", userID, err)
		}
	})

	t.Run("Context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, uint(3))
		userID, err := a.Authorize(ctx, "")
		if err != nil || userID != 3 {
			t.Errorf("expected user 3, got %d (%v)", userID, err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := a.Authorize(context.Background(), "")
		var se huma.StatusError
		if !errors.As(err, &se) || se.GetStatus() != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := a.Authorize(context.Background(), CookieName+"=not-a-jwt")
		var se huma.StatusError
		if !errors.As(err, &se) || se.GetStatus() != http.StatusUnauthorized {
			t.Errorf("expected 401, got %v", err)
		}
	})
}
