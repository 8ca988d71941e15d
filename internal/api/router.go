package api

import (
	"crisis-center-service/internal/api/handlers"
	"crisis-center-service/internal/ports"
	"crisis-center-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Deps carries everything the HTTP layer needs; handlers stay unaware of
// concrete adapters.
type Deps struct {
	Lookup             *services.LookupService
	Registry           ports.CenterRegistry
	GeocodingAvailable bool
	TravelAvailable    bool
	AllowedOrigins     []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	lookupHandler := &handlers.LookupHandler{Service: deps.Lookup}
	centerHandler := &handlers.CenterHandler{Registry: deps.Registry}
	healthHandler := &handlers.HealthHandler{
		Registry:           deps.Registry,
		GeocodingAvailable: deps.GeocodingAvailable,
		TravelAvailable:    deps.TravelAvailable,
	}

	mux.HandleFunc("GET /{$}", handlers.Home)
	mux.HandleFunc("GET /find-nearest", lookupHandler.FindNearest)
	mux.HandleFunc("GET /centers", centerHandler.List)
	mux.HandleFunc("GET /centers/search", centerHandler.Search)
	mux.HandleFunc("GET /centers/{region}", centerHandler.Get)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		// A crisis lookup page may be embedded anywhere; default open.
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})

	return corsHandler.Handler(requestLogger(mux))
}
