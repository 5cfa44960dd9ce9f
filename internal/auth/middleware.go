package auth

import (
	"context"
	"net/http"
	"time"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// UserIDFrom returns the user id the session middleware stored on ctx.
func UserIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok && id != 0
}

// Session resolves the auth_token cookie into a user id on the request
// context. Requests without a valid token pass through anonymously; the
// handlers that need a user reject them. Tokens past half their lifetime
// are reissued.
func (a *Authenticator) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, expiry, err := a.ParseToken(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if !expiry.IsZero() && time.Until(expiry) < a.duration/2 {
			if fresh, err := a.SessionCookie(userID); err == nil {
				http.SetCookie(w, fresh)
			}
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
