package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/travel-planner-api/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Trips        *TripHandler
	Destinations *DestinationHandler
	Users        *UserHandler
	Catalog      *CatalogHandler
}

type RouteOptions struct {
	Authenticator *auth.Authenticator
	// Discord is nil when Discord login is not configured.
	Discord        *auth.DiscordLogin
	AllowedOrigins []string
}

// RegisterRoutes mounts the middleware stack, the plain health and Discord
// routes and the huma API on r.
func RegisterRoutes(r *chi.Mux, opts RouteOptions, h Handlers) huma.API {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(opts.Authenticator.Session)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	if opts.Discord != nil {
		r.Get("/auth/discord/login", opts.Discord.HandleLogin)
		r.Get("/auth/discord/callback", opts.Discord.HandleCallback)
	}

	config := huma.DefaultConfig("Travel Planner API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)
	Register(api, h)
	return api
}

// Register adds every JSON operation to api.
func Register(api huma.API, h Handlers) {
	huma.Get(api, "/trips", h.Trips.HandleList)
	huma.Get(api, "/trips/date-range", h.Trips.HandleDateRange)
	huma.Get(api, "/trips/starting", h.Trips.HandleStarting)
	huma.Get(api, "/trips/{id}", h.Trips.HandleGet)
	huma.Post(api, "/trips", h.Trips.HandleCreate)
	huma.Put(api, "/trips/{id}", h.Trips.HandleUpdate)
	huma.Delete(api, "/trips/{id}", h.Trips.HandleDelete)
	huma.Put(api, "/trips/{id}/users/{userId}", h.Trips.HandleAddUser)
	huma.Delete(api, "/trips/{id}/users/{userId}", h.Trips.HandleRemoveUser)
	huma.Get(api, "/trips/{id}/itinerary", h.Trips.HandleItinerary, func(o *huma.Operation) {
		o.Responses = map[string]*huma.Response{
			"200": {
				Description: "Printable itinerary",
				Content:     map[string]*huma.MediaType{"application/pdf": {}},
			},
		}
	})
	huma.Get(api, "/users/{id}/trips", h.Trips.HandleUserTrips)

	huma.Get(api, "/destinations", h.Destinations.HandleList)
	huma.Get(api, "/destinations/search", h.Destinations.HandleSearch)
	huma.Get(api, "/destinations/{id}", h.Destinations.HandleGet)
	huma.Post(api, "/destinations", h.Destinations.HandleCreate)
	huma.Put(api, "/destinations/{id}", h.Destinations.HandleUpdate)
	huma.Delete(api, "/destinations/{id}", h.Destinations.HandleDelete)

	// Auth routes
	huma.Post(api, "/auth/register", h.Users.HandleRegister)
	huma.Post(api, "/auth/login", h.Users.HandleLogin)

	// Session routes
	huma.Get(api, "/me", h.Users.HandleMe, cookieAuth)
	huma.Get(api, "/me/trips", h.Users.HandleMyTrips, cookieAuth)

	huma.Get(api, "/users", h.Users.HandleList)
	huma.Get(api, "/users/{id}", h.Users.HandleGet)
	huma.Put(api, "/users/{id}", h.Users.HandleUpdate)
	huma.Delete(api, "/users/{id}", h.Users.HandleDelete)

	huma.Get(api, "/accommodations", h.Catalog.HandleListAccommodations)
	huma.Get(api, "/accommodations/{id}", h.Catalog.HandleGetAccommodation)
	huma.Get(api, "/transportation", h.Catalog.HandleListTransportation)
	huma.Get(api, "/transportation/{id}", h.Catalog.HandleGetTransportation)
	huma.Get(api, "/local-services", h.Catalog.HandleListLocalServices)
	huma.Get(api, "/local-services/{id}", h.Catalog.HandleGetLocalService)
	huma.Get(api, "/expenses/trip/{tripId}", h.Catalog.HandleListExpenses)
	huma.Get(api, "/expenses/{id}", h.Catalog.HandleGetExpense)
	huma.Post(api, "/expenses", h.Catalog.HandleCreateExpense)
}

func cookieAuth(o *huma.Operation) {
	o.Security = []map[string][]string{{"cookieAuth": {}}}
}
