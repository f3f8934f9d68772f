package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

const (
	owmCurrentURL  = "https://api.openweathermap.org/data/2.5/weather"
	owmForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// OpenWeatherProvider implements the weather.Provider interface for
// OpenWeatherMap's current-weather and 5-day/3-hour forecast endpoints.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	units       weather.Units
	lang        string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

var _ weather.Provider = (*OpenWeatherProvider)(nil)

func NewOpenWeatherProvider(client *http.Client, apiKey string, units weather.Units, lang string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  owmCurrentURL,
		forecastURL: owmForecastURL,
		units:       units,
		lang:        lang,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) query(city string) url.Values {
	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("q", city)
	values.Set("units", string(p.units))
	if p.lang != "" {
		values.Set("lang", p.lang)
	}
	return values
}

// owmCondition is the shared weather[] element of both endpoints.
type owmCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, city string) (weather.CurrentWeather, error) {
	if p.apiKey == "" {
		return weather.CurrentWeather{}, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.currentURL, p.query(city).Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.CurrentWeather{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Name string `json:"name"`
		Dt   int64  `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Clouds struct {
			All int `json:"all"`
		} `json:"clouds"`
		Visibility *int           `json:"visibility"`
		Weather    []owmCondition `json:"weather"`
		Sys        struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
		Timezone int `json:"timezone"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentWeather{}, fmt.Errorf("decode current weather: %w", err)
	}

	cw := weather.CurrentWeather{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Timestamp:   localTime(payload.Dt, payload.Timezone),
		Units:       p.units,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		TempMin:     payload.Main.TempMin,
		TempMax:     payload.Main.TempMax,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		WindDeg:     payload.Wind.Deg,
		Cloudiness:  payload.Clouds.All,
		Visibility:  payload.Visibility,
	}

	if len(payload.Weather) > 0 {
		cw.ConditionID = payload.Weather[0].ID
		cw.Condition = payload.Weather[0].Main
		cw.Description = payload.Weather[0].Description
	}
	if payload.Sys.Sunrise > 0 {
		t := localTime(payload.Sys.Sunrise, payload.Timezone)
		cw.Sunrise = &t
	}
	if payload.Sys.Sunset > 0 {
		t := localTime(payload.Sys.Sunset, payload.Timezone)
		cw.Sunset = &t
	}

	return cw, nil
}

func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, city string, count int) (weather.ForecastBundle, error) {
	if p.apiKey == "" {
		return weather.ForecastBundle{}, fmt.Errorf("openweather api key is not configured")
	}
	if count <= 0 {
		count = weather.DefaultForecastCount
	}

	buildRequest := func() (*http.Request, error) {
		values := p.query(city)
		values.Set("cnt", fmt.Sprintf("%d", count))
		u := fmt.Sprintf("%s?%s", p.forecastURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.ForecastBundle{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []owmCondition `json:"weather"`
		} `json:"list"`
		City struct {
			Name  string `json:"name"`
			Coord struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"coord"`
			Country    string `json:"country"`
			Population int    `json:"population"`
			Timezone   int    `json:"timezone"`
		} `json:"city"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ForecastBundle{}, fmt.Errorf("decode forecast: %w", err)
	}

	bundle := weather.ForecastBundle{
		City: weather.CityInfo{
			Name:           payload.City.Name,
			Country:        payload.City.Country,
			Population:     payload.City.Population,
			TimezoneOffset: payload.City.Timezone,
			Lat:            payload.City.Coord.Lat,
			Lon:            payload.City.Coord.Lon,
		},
		Records: make([]weather.ForecastRecord, 0, len(payload.List)),
	}

	for _, item := range payload.List {
		rec := weather.ForecastRecord{
			Timestamp:   localTime(item.Dt, payload.City.Timezone),
			Temperature: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			rec.ConditionID = item.Weather[0].ID
			rec.Condition = item.Weather[0].Main
			rec.Description = item.Weather[0].Description
		}
		bundle.Records = append(bundle.Records, rec)
	}

	return bundle, nil
}

// localTime shifts a unix timestamp by the city's UTC offset and reads it as
// a UTC clock. Downstream day grouping keys on this composed local clock, so
// no further timezone arithmetic happens anywhere else.
func localTime(unix int64, offsetSeconds int) time.Time {
	return time.Unix(unix+int64(offsetSeconds), 0).UTC()
}
