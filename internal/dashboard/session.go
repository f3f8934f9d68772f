// Package dashboard owns the per-session state behind the interactive menu:
// the provider handle, the bounded search history, and the snapshot cache.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/NishantDas0079/weather-dashboard/internal/chart"
	"github.com/NishantDas0079/weather-dashboard/internal/history"
	"github.com/NishantDas0079/weather-dashboard/internal/report"
	"github.com/NishantDas0079/weather-dashboard/internal/store"
	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// ErrNoHistory is returned when an operation needs a previous search and the
// session has none yet.
var ErrNoHistory = errors.New("no searches in this session yet")

// Session ties one interactive run together. It is owned by a single
// foreground actor and is not safe for concurrent use; the cache it embeds
// carries its own lock for the serve path.
type Session struct {
	provider   weather.Provider
	cache      *store.MemoryStore
	history    *history.History
	units      weather.Units
	chartWidth int
	reportDir  string
}

// Options configures a Session.
type Options struct {
	Units      weather.Units
	ChartWidth int
	ReportDir  string
	HistSize   int
}

func NewSession(provider weather.Provider, cache *store.MemoryStore, opts Options) *Session {
	if opts.ChartWidth <= 0 {
		opts.ChartWidth = chart.DefaultBarWidth
	}
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	return &Session{
		provider:   provider,
		cache:      cache,
		history:    history.New(opts.HistSize),
		units:      opts.Units,
		chartWidth: opts.ChartWidth,
		reportDir:  opts.ReportDir,
	}
}

// CurrentWeather looks up current conditions for a city, serving from the
// snapshot cache when fresh. Every successful lookup is appended to the
// session history.
func (s *Session) CurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error) {
	city = strings.TrimSpace(city)

	cw, err := s.cache.GetCurrent(city)
	if err != nil {
		cw, err = s.provider.FetchCurrent(ctx, city)
		if err != nil {
			return weather.CurrentWeather{}, err
		}
		s.cache.SaveCurrent(city, cw)
	}

	s.history.Record(history.Entry{City: city, Timestamp: time.Now(), Current: cw})
	return cw, nil
}

// Forecast returns the aggregated multi-day forecast for a city.
func (s *Session) Forecast(ctx context.Context, city string) ([]weather.DailySummary, error) {
	bundle, err := s.forecastBundle(ctx, city)
	if err != nil {
		return nil, err
	}
	return weather.AggregateDaily(bundle.Records), nil
}

// TrendChart renders the midday temperature trend for a city. A nil, error-free
// result means there were too few midday points to draw a trend.
func (s *Session) TrendChart(ctx context.Context, city string) ([]string, error) {
	bundle, err := s.forecastBundle(ctx, city)
	if err != nil {
		return nil, err
	}
	return chart.Render(chart.MiddayPoints(bundle.Records), s.chartWidth), nil
}

func (s *Session) forecastBundle(ctx context.Context, city string) (weather.ForecastBundle, error) {
	city = strings.TrimSpace(city)

	bundle, err := s.cache.GetForecast(city)
	if err == nil {
		return bundle, nil
	}
	bundle, err = s.provider.FetchForecast(ctx, city, weather.DefaultForecastCount)
	if err != nil {
		return weather.ForecastBundle{}, err
	}
	s.cache.SaveForecast(city, bundle)
	return bundle, nil
}

// LastSearches returns up to n history entries, most recent first.
func (s *Session) LastSearches(n int) []history.Entry {
	return s.history.LastN(n)
}

// LastCity returns the most recently searched city, used as the fallback
// target for the chart and save-report flows.
func (s *Session) LastCity() (string, bool) {
	e, ok := s.history.Latest()
	if !ok {
		return "", false
	}
	return e.City, true
}

// SaveLastReport renders the most recent search through the report formatter
// and writes it to the configured report directory, returning the path.
func (s *Session) SaveLastReport(now time.Time) (string, error) {
	e, ok := s.history.Latest()
	if !ok {
		return "", ErrNoHistory
	}
	return report.Save(s.reportDir, e.City, report.FormatCurrent(e.Current), now)
}

// Units reports the measurement system this session requests from the
// provider.
func (s *Session) Units() weather.Units {
	return s.units
}
