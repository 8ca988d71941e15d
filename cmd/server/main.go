package main

import (
	"context"
	"crisis-center-service/internal/adapters/cache"
	"crisis-center-service/internal/adapters/geocode"
	"crisis-center-service/internal/adapters/travel"
	"crisis-center-service/internal/api"
	"crisis-center-service/internal/config"
	"crisis-center-service/internal/platform/db"
	"crisis-center-service/internal/platform/obs"
	"crisis-center-service/internal/ports"
	"crisis-center-service/internal/registry"
	"crisis-center-service/internal/services"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Google Maps, caches) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	geocodeTimeout := config.GetDuration("GEOCODE_TIMEOUT", 5*time.Second)
	travelTimeout := config.GetDuration("TRAVEL_TIMEOUT", 5*time.Second)
	altCount := config.GetInt("ALTERNATIVE_COUNT", services.DefaultAlternativeCount)

	log.Println("Starting Crisis Center API...")

	reg, err := loadRegistry(os.Getenv("CENTERS_PATH"))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Center catalog loaded centers=%d", reg.Len())

	// A missing API key disables geocoding and travel estimates; the
	// service still answers with fallback-quality data.
	var geocoder ports.Geocoder
	var estimator ports.TravelEstimator
	if strings.TrimSpace(apiKey) == "" {
		log.Println("GOOGLE_MAPS_API_KEY not set; geocoding and travel estimates disabled")
	} else {
		g, err := geocode.NewClient(apiKey)
		if err != nil {
			log.Fatal(err)
		}
		geocoder = g

		t, err := travel.NewClient(apiKey)
		if err != nil {
			log.Fatal(err)
		}
		estimator = t
	}

	geocodeCache, closeCache, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	metrics := obs.NewMetrics(prometheus.DefaultRegisterer)

	resolver := &services.CityResolver{
		Geocoder: geocoder,
		Cache:    geocodeCache,
		Timeout:  geocodeTimeout,
		Metrics:  metrics,
	}
	enricher := services.NewTravelEnricher(estimator, travelTimeout, metrics)
	lookup := &services.LookupService{
		Registry:         reg,
		Resolver:         resolver,
		Enricher:         enricher,
		AlternativeCount: altCount,
		Metrics:          metrics,
	}

	router := api.NewRouter(api.Deps{
		Lookup:             lookup,
		Registry:           reg,
		GeocodingAvailable: geocoder != nil,
		TravelAvailable:    estimator != nil,
		AllowedOrigins:     splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func loadRegistry(centersPath string) (*registry.StaticRegistry, error) {
	centers := registry.BuiltinCenters()

	if strings.TrimSpace(centersPath) != "" {
		loaded, err := registry.LoadFromJSON(centersPath)
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}
		log.Printf("Using center catalog override path=%q", centersPath)
		centers = loaded
	}

	return registry.New(centers)
}

// openGeocodeCache selects a cache backend: local sqlite (DB_PATH), shared
// postgres (DATABASE_URL), or redis (REDIS_ADDR), in that order. With none
// configured every lookup geocodes fresh, matching the collaborator's own
// rate limits being the only constraint.
func openGeocodeCache() (ports.GeocodeCache, func(), error) {
	if dbPath := os.Getenv("DB_PATH"); strings.TrimSpace(dbPath) != "" {
		sdb, err := openSqlite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSqliteSchema(sdb); err != nil {
			sdb.Close()
			return nil, nil, err
		}
		log.Printf("Geocode cache: sqlite path=%q", dbPath)
		return cache.NewSqliteGeocodeCache(sdb), func() { sdb.Close() }, nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pdb, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("Geocode cache: postgres")
		return cache.NewSQLGeocodeCache(pdb), func() { pdb.Close() }, nil
	}

	if redisAddr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(redisAddr) != "" {
		rc := cache.NewRedisGeocodeCache(redisAddr, config.GetDuration("REDIS_TTL", 24*time.Hour))
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			// Cache errors downgrade to misses at request time, so a dead
			// redis at startup is a warning, not a failure.
			log.Printf("redis unreachable addr=%q err=%v", redisAddr, err)
		}
		log.Printf("Geocode cache: redis addr=%q", redisAddr)
		return rc, nil, nil
	}

	log.Println("Geocode cache: disabled")
	return nil, nil, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sdb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sdb.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sdb, nil
}

func splitOrigins(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
