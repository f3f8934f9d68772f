// Package store caches provider responses per city with a bounded age, so
// the serve mode can answer from memory between refresh runs.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// ErrNotFound is returned when no fresh data is cached for a city.
var ErrNotFound = errors.New("no cached weather data for city")

type currentEntry struct {
	data      weather.CurrentWeather
	fetchedAt time.Time
}

type forecastEntry struct {
	data      weather.ForecastBundle
	fetchedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of the latest current
// weather and forecast per city. Entries older than maxAge are treated as
// absent; maxAge <= 0 means entries never expire.
type MemoryStore struct {
	mu sync.RWMutex

	current  map[string]currentEntry
	forecast map[string]forecastEntry
	maxAge   time.Duration
}

func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		current:  make(map[string]currentEntry),
		forecast: make(map[string]forecastEntry),
		maxAge:   maxAge,
	}
}

// Key normalizes a city name for cache lookup. Display strings elsewhere
// keep the user's spelling; only the cache folds case.
func Key(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// SaveCurrent stores the latest current-conditions payload for a city.
func (s *MemoryStore) SaveCurrent(city string, cw weather.CurrentWeather) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[Key(city)] = currentEntry{data: cw, fetchedAt: time.Now()}
}

// SaveForecast stores the latest forecast bundle for a city.
func (s *MemoryStore) SaveForecast(city string, fb weather.ForecastBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecast[Key(city)] = forecastEntry{data: fb, fetchedAt: time.Now()}
}

// GetCurrent returns the cached current weather for a city if still fresh.
func (s *MemoryStore) GetCurrent(city string) (weather.CurrentWeather, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.current[Key(city)]
	if !ok || s.expired(e.fetchedAt) {
		return weather.CurrentWeather{}, ErrNotFound
	}
	return e.data, nil
}

// GetForecast returns the cached forecast for a city if still fresh.
func (s *MemoryStore) GetForecast(city string) (weather.ForecastBundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.forecast[Key(city)]
	if !ok || s.expired(e.fetchedAt) {
		return weather.ForecastBundle{}, ErrNotFound
	}
	return e.data, nil
}

func (s *MemoryStore) expired(fetchedAt time.Time) bool {
	return s.maxAge > 0 && time.Since(fetchedAt) > s.maxAge
}
