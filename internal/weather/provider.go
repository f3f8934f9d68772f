package weather

import (
	"context"
	"errors"
)

// Fetch failure kinds. Providers classify transport and HTTP outcomes onto
// these sentinels so callers can branch with errors.Is without knowing which
// backend produced the failure.
var (
	ErrUnauthorized = errors.New("provider rejected credentials")
	ErrNotFound     = errors.New("city not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrTimeout      = errors.New("request timed out")
	ErrNetwork      = errors.New("network error")
)

// DefaultForecastCount is the number of 3-hour slots requested per forecast:
// 8 per day across 5 days.
const DefaultForecastCount = 40

// Provider abstracts the weather data source.
type Provider interface {
	Name() string

	// FetchCurrent returns current conditions for a city.
	FetchCurrent(ctx context.Context, city string) (CurrentWeather, error)

	// FetchForecast returns up to count 3-hour forecast records plus city
	// metadata. count <= 0 requests the provider default.
	FetchForecast(ctx context.Context, city string, count int) (ForecastBundle, error)
}
