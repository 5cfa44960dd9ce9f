package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName           = "auth_token"
	DefaultTokenDuration = 24 * time.Hour
)

// Authenticator issues and verifies the signed session token carried in the
// auth_token cookie.
type Authenticator struct {
	secret   []byte
	duration time.Duration
}

func NewAuthenticator(secret string, duration time.Duration) *Authenticator {
	if duration <= 0 {
		duration = DefaultTokenDuration
	}
	return &Authenticator{secret: []byte(secret), duration: duration}
}

// AuthInput carries the raw Cookie header into huma operations.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

// Authorize returns the signed-in user id, taken from the session
// middleware when it ran or from the auth_token cookie otherwise.
func (a *Authenticator) Authorize(ctx context.Context, cookieHeader string) (uint, error) {
	if userID, ok := UserIDFrom(ctx); ok {
		return userID, nil
	}

	cookies, err := http.ParseCookie(cookieHeader)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized")
	}
	for _, c := range cookies {
		if c.Name != CookieName {
			continue
		}
		userID, _, err := a.ParseToken(c.Value)
		if err != nil {
			return 0, huma.Error401Unauthorized("Invalid or expired session")
		}
		return userID, nil
	}
	return 0, huma.Error401Unauthorized("Unauthorized")
}

func (a *Authenticator) TokenDuration() time.Duration {
	return a.duration
}

func (a *Authenticator) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(a.duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ParseToken validates the token and returns its user id and expiry.
func (a *Authenticator) ParseToken(tokenString string) (uint, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, fmt.Errorf("invalid token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 {
		return 0, time.Time{}, fmt.Errorf("invalid token claims")
	}

	var expiry time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiry = exp.Time
	}

	return uint(userIDFloat), expiry, nil
}

// SessionCookie returns a fresh auth_token cookie for userID.
func (a *Authenticator) SessionCookie(userID uint) (*http.Cookie, error) {
	token, err := a.GenerateToken(userID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(a.duration),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}, nil
}
