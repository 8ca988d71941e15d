package cache

import (
	"context"
	"crisis-center-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed cache mapping normalized city names to geocoded coordinates.
// City keys are expected to be consistent (lowercased, trimmed) by the
// caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// InitSqliteSchema creates the geocode cache table if it does not exist.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        city TEXT PRIMARY KEY,
        lat REAL NOT NULL,
        lon REAL NOT NULL
    );
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache table: %w", err)
	}

	return nil
}

// Fetch the cached coordinates for a city.
func (s *SqliteGeocodeCache) Get(ctx context.Context, city string) (domain.Coordinates, bool, error) {
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
    WHERE city = ?;
	`

	var lat, lon float64
	err := s.DB.QueryRowContext(ctx, q, city).Scan(&lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

// Store a city -> coordinates mapping.
func (s *SqliteGeocodeCache) Put(ctx context.Context, city string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("insert geocode cache: empty city key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (city, lat, lon)
    VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, city, coords.Lat, coords.Lon); err != nil {
		return fmt.Errorf("insert geocode cache city=%q: %w", city, err)
	}

	return nil
}
