package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// RateLimitedProvider wraps a weather.Provider with client-side rate
// limiting so bursts of menu activity stay inside the API's free tier.
type RateLimitedProvider struct {
	provider weather.Provider
	limiter  *rate.Limiter
	name     string
}

var _ weather.Provider = (*RateLimitedProvider)(nil)

// NewRateLimitedProvider wraps provider with a limiter allowing rps requests
// per second (fractional values allowed) and bursts of up to burst requests.
func NewRateLimitedProvider(provider weather.Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [rate limited]", provider.Name()),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.name
}

func (r *RateLimitedProvider) FetchCurrent(ctx context.Context, city string) (weather.CurrentWeather, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.CurrentWeather{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchCurrent(ctx, city)
}

func (r *RateLimitedProvider) FetchForecast(ctx context.Context, city string, count int) (weather.ForecastBundle, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.ForecastBundle{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchForecast(ctx, city, count)
}
