package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gdg-garage/travel-planner-api/internal/auth"
	"github.com/gdg-garage/travel-planner-api/internal/catalog"
	"github.com/gdg-garage/travel-planner-api/internal/config"
	"github.com/gdg-garage/travel-planner-api/internal/database"
	"github.com/gdg-garage/travel-planner-api/internal/handlers"
	"github.com/gdg-garage/travel-planner-api/internal/notifier"
	"github.com/gdg-garage/travel-planner-api/internal/repository"
	"github.com/gdg-garage/travel-planner-api/internal/service"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Connect to Database
	db := database.Connect(cfg)

	tripRepo := repository.NewTripRepository(db)
	userRepo := repository.NewUserRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)

	// Membership notifications are optional
	var tripNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" && cfg.DiscordNotificationsChannelID != "" {
		session, err := notifier.NewDiscordSession(cfg.DiscordBotToken)
		if err != nil {
			logger.Warn("Discord notifier not initialized", "error", err)
		} else {
			tripNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	tripService := service.NewTripService(tripRepo, userRepo, tripNotifier, logger.With("service", "trips"))
	userService := service.NewUserService(userRepo, tripRepo, service.NewBcryptHasher(cfg.BcryptCost), logger.With("service", "users"))
	destinationService := service.NewDestinationService(destinationRepo, logger.With("service", "destinations"))

	travelCatalog, err := newCatalog(cfg, repository.NewCatalogRepository(db), logger.With("service", "catalog"))
	if err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = randomSecret()
		logger.Warn("JWT_SECRET is not set, sessions will not survive a restart")
	}
	authenticator := auth.NewAuthenticator(secret, cfg.TokenTTL)

	var discordLogin *auth.DiscordLogin
	if cfg.DiscordLoginEnabled() {
		discordLogin = auth.NewDiscordLogin(cfg, userService, authenticator, logger.With("service", "discord"))
	}

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, handlers.RouteOptions{
		Authenticator:  authenticator,
		Discord:        discordLogin,
		AllowedOrigins: []string{cfg.FrontendURL},
	}, handlers.Handlers{
		Trips:        handlers.NewTripHandler(tripService, travelCatalog, logger),
		Destinations: handlers.NewDestinationHandler(destinationService, logger),
		Users:        handlers.NewUserHandler(userService, tripService, authenticator, logger),
		Catalog:      handlers.NewCatalogHandler(travelCatalog, logger),
	})

	// Start Server
	logger.Info("Starting server", "port", cfg.Port, "catalog", cfg.CatalogSource, "driver", cfg.DatabaseDriver)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newCatalog(cfg *config.Config, repo *repository.CatalogRepository, logger *slog.Logger) (catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case "", config.CatalogFixtures:
		return catalog.NewFixtures(), nil
	case config.CatalogDatabase:
		store := catalog.NewStore(repo, logger)
		if cfg.SeedCatalog {
			if err := store.Seed(context.Background()); err != nil {
				return nil, err
			}
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}
	return hex.EncodeToString(b)
}
