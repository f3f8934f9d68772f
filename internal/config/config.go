package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

var validate = validator.New()

// AppConfig carries everything the dashboard reads from the environment.
type AppConfig struct {
	// OpenWeatherMap credentials and request options.
	APIKey string        `validate:"required"`
	Units  weather.Units `validate:"oneof=metric imperial standard"`
	Lang   string

	// Interactive session knobs.
	HistorySize int `validate:"gt=0"`
	ChartWidth  int `validate:"gt=0"`
	ReportDir   string

	// Outbound HTTP.
	HTTPTimeout time.Duration

	// Serve mode.
	Port            string
	Cities          []string      // cities refreshed in the background
	RefreshInterval time.Duration // how often the scheduler re-fetches
	CacheMaxAge     time.Duration // staleness bound for cached snapshots
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		APIKey:      os.Getenv("OPENWEATHER_API_KEY"),
		Units:       weather.Units(getenvDefault("WEATHER_UNITS", string(weather.UnitsMetric))),
		Lang:        getenvDefault("WEATHER_LANG", "en"),
		HistorySize: getenvInt("HISTORY_SIZE", 10),
		ChartWidth:  getenvInt("CHART_WIDTH", 40),
		ReportDir:   getenvDefault("REPORT_DIR", "."),
		Port:        getenvDefault("PORT", "8080"),
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.CacheMaxAge, err = getenvDuration("CACHE_MAX_AGE", 30*time.Minute); err != nil {
		return nil, err
	}

	if cities := os.Getenv("WEATHER_CITIES"); cities != "" {
		for _, c := range strings.Split(cities, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Cities = append(cfg.Cities, c)
			}
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
