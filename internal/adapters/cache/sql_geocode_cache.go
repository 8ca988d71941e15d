package cache

import (
	"context"
	"crisis-center-service/internal/domain"
	"crisis-center-service/internal/platform/obs"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLGeocodeCache is the postgres variant of the geocode cache, used when
// several service instances share one cache. Schema is managed by
// cmd/dbtool.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// InitSchema creates the postgres geocode cache table if it does not exist.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        city TEXT PRIMARY KEY,
        lat DOUBLE PRECISION NOT NULL,
        lon DOUBLE PRECISION NOT NULL
    );
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache table: %w", err)
	}

	return nil
}

// Fetch the cached coordinates for a city.
func (s *SQLGeocodeCache) Get(ctx context.Context, city string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coordinates{}, false, nil
	}

	q := `
	SELECT lat, lon
    FROM geocode_cache
    WHERE city = $1;
	`

	var lat, lon float64
	err = s.DB.QueryRowContext(ctx, q, city).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

// Store a city -> coordinates mapping.
func (s *SQLGeocodeCache) Put(ctx context.Context, city string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("insert geocode cache: empty city key")
	}

	q := `
	INSERT INTO geocode_cache (city, lat, lon)
    VALUES ($1, $2, $3)
	ON CONFLICT (city) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	if _, err := s.DB.ExecContext(ctx, q, city, coords.Lat, coords.Lon); err != nil {
		return fmt.Errorf("insert geocode cache city=%q: %w", city, err)
	}

	return nil
}
