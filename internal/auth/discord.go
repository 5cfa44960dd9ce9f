package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gdg-garage/travel-planner-api/internal/config"
	"github.com/gdg-garage/travel-planner-api/internal/models"
	"golang.org/x/oauth2"
)

const (
	DiscordAuthorizeEndpoint = "https://discord.com/api/oauth2/authorize"
	DiscordTokenEndpoint     = "https://discord.com/api/oauth2/token"
	DiscordUserAPI           = "https://discord.com/api/users/@me"

	stateCookieName = "oauth_state"
)

// UserLinker resolves a Discord identity to a travel-planner user.
type UserLinker interface {
	FindOrCreateByEmail(ctx context.Context, name, email, discordID string) (*models.User, error)
}

// DiscordLogin signs users in through Discord OAuth and links them to the
// account with the same email.
type DiscordLogin struct {
	oauthConfig *oauth2.Config
	userAPI     string
	users       UserLinker
	auth        *Authenticator
	frontendURL string
	logger      *slog.Logger
}

func NewDiscordLogin(cfg *config.Config, users UserLinker, authenticator *Authenticator, logger *slog.Logger) *DiscordLogin {
	return &DiscordLogin{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURL,
			Scopes:       []string{"identify", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  DiscordAuthorizeEndpoint,
				TokenURL: DiscordTokenEndpoint,
			},
		},
		userAPI:     DiscordUserAPI,
		users:       users,
		auth:        authenticator,
		frontendURL: cfg.FrontendURL,
		logger:      logger,
	}
}

// WithEndpoints points the flow at other OAuth and user endpoints.
func (h *DiscordLogin) WithEndpoints(authURL, tokenURL, userAPI string) *DiscordLogin {
	h.oauthConfig.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	h.userAPI = userAPI
	return h
}

func (h *DiscordLogin) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		http.Error(w, "Failed to start login", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

type discordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
	Verified   bool   `json:"verified"`
}

func (u discordUser) displayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func (h *DiscordLogin) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := r.Cookie(stateCookieName)
	if err != nil || state.Value == "" || state.Value != r.URL.Query().Get("state") {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Value: "", Path: "/", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		h.logger.Warn("discord token exchange failed", "error", err)
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	profile, err := h.fetchUser(ctx, token)
	if err != nil {
		h.logger.Warn("discord user lookup failed", "error", err)
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	if profile.Email == "" || !profile.Verified {
		http.Error(w, "A verified Discord email is required", http.StatusForbidden)
		return
	}

	user, err := h.users.FindOrCreateByEmail(ctx, profile.displayName(), profile.Email, profile.ID)
	if err != nil {
		h.logger.Error("failed to link discord user", "discord_id", profile.ID, "error", err)
		http.Error(w, "Failed to save user", http.StatusInternalServerError)
		return
	}

	cookie, err := h.auth.SessionCookie(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, cookie)

	h.logger.Info("discord login", "user_id", user.ID)
	http.Redirect(w, r, h.frontendURL, http.StatusTemporaryRedirect)
}

func (h *DiscordLogin) fetchUser(ctx context.Context, token *oauth2.Token) (*discordUser, error) {
	client := h.oauthConfig.Client(ctx, token)

	resp, err := client.Get(h.userAPI)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discord user api returned %s", resp.Status)
	}

	var u discordUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode discord user: %w", err)
	}
	return &u, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
