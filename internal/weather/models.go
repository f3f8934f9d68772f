package weather

import (
	"time"
)

// Units selects the measurement system requested from the provider.
// A single fetch never mixes units; the value is passed through verbatim.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// TempSuffix returns the display suffix for temperatures in these units.
func (u Units) TempSuffix() string {
	switch u {
	case UnitsImperial:
		return "°F"
	case UnitsStandard:
		return "K"
	default:
		return "°C"
	}
}

// ForecastRecord is one timestamped forecast observation at ~3-hour
// granularity, as delivered by the provider.
//
// Timestamp carries the provider's local clock (UTC shifted by the city's
// reported offset); no further timezone conversion happens downstream, so
// day grouping follows the provider's own calendar convention.
type ForecastRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	ConditionID int       `json:"conditionId"`
	Condition   string    `json:"condition"`   // short label, e.g. "Rain"
	Description string    `json:"description"` // long label, e.g. "light rain"
}

// DayKey returns the calendar-day grouping key for this record.
func (r ForecastRecord) DayKey() string {
	return r.Timestamp.Format("2006-01-02")
}

// DailySummary aggregates one calendar day of forecast records.
//
// Condition is the consensus (most frequent) short label for the day, while
// ConditionID and Description come from the day's first record and may
// disagree with the consensus. Both are kept distinct on purpose.
type DailySummary struct {
	Date        string  `json:"date"` // "2006-01-02"
	AvgTemp     float64 `json:"avgTemp"`
	MaxTemp     float64 `json:"maxTemp"`
	MinTemp     float64 `json:"minTemp"`
	Condition   string  `json:"condition"`
	ConditionID int     `json:"conditionId"`
	Description string  `json:"description"`
	Records     int     `json:"records"`
}

// Day parses the summary's date key back into a time.Time (midnight UTC).
func (d DailySummary) Day() time.Time {
	t, _ := time.Parse("2006-01-02", d.Date)
	return t
}

// CityInfo is the city metadata block a forecast response carries.
type CityInfo struct {
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	Population     int     `json:"population"`
	TimezoneOffset int     `json:"timezoneOffset"` // seconds east of UTC
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

// ForecastBundle is a provider forecast response: city metadata plus the raw
// record sequence, ordered as delivered (chronological).
type ForecastBundle struct {
	City    CityInfo         `json:"city"`
	Records []ForecastRecord `json:"records"`
}

// CurrentWeather is the full current-conditions payload for one city.
// Optional fields the provider may omit are pointers; formatting substitutes
// "N/A" when they are nil.
type CurrentWeather struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Timestamp   time.Time `json:"timestamp"`
	Units       Units     `json:"units"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	TempMin     float64   `json:"tempMin"`
	TempMax     float64   `json:"tempMax"`
	Humidity    int       `json:"humidity"`
	Pressure    int       `json:"pressure"`
	WindSpeed   float64   `json:"windSpeed"`
	WindDeg     int       `json:"windDeg"`
	Cloudiness  int       `json:"cloudiness"`
	ConditionID int       `json:"conditionId"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`

	Visibility *int       `json:"visibility,omitempty"` // meters
	Sunrise    *time.Time `json:"sunrise,omitempty"`
	Sunset     *time.Time `json:"sunset,omitempty"`
}
