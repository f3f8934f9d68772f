// Package report renders weather payloads into fixed-shape text reports and
// saves them to timestamped files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NishantDas0079/weather-dashboard/internal/common"
	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// placeholder substitutes optional fields the provider omitted. Lines keep
// their place in the report so downstream readers always see the same shape.
const placeholder = "N/A"

// FormatCurrent renders one current-conditions payload. It never fails on a
// well-formed payload; absent optional fields print the placeholder.
func FormatCurrent(cw weather.CurrentWeather) string {
	ts := cw.Units.TempSuffix()

	var b strings.Builder
	fmt.Fprintf(&b, "Weather report: %s, %s\n", cw.City, cw.Country)
	fmt.Fprintf(&b, "Time:        %s\n", cw.Timestamp.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Condition:   %s (%s)\n", orPlaceholder(cw.Condition), orPlaceholder(cw.Description))
	fmt.Fprintf(&b, "Temperature: %.1f%s (feels like %.1f%s)\n", cw.Temperature, ts, cw.FeelsLike, ts)
	fmt.Fprintf(&b, "Min/Max:     %.1f%s / %.1f%s\n", cw.TempMin, ts, cw.TempMax, ts)
	fmt.Fprintf(&b, "Humidity:    %d%%\n", cw.Humidity)
	fmt.Fprintf(&b, "Pressure:    %d hPa\n", cw.Pressure)
	fmt.Fprintf(&b, "Wind:        %.1f %s @ %d°\n", cw.WindSpeed, windUnit(cw.Units), cw.WindDeg)
	fmt.Fprintf(&b, "Cloudiness:  %d%%\n", cw.Cloudiness)

	if cw.Visibility != nil {
		fmt.Fprintf(&b, "Visibility:  %d m\n", *cw.Visibility)
	} else {
		fmt.Fprintf(&b, "Visibility:  %s\n", placeholder)
	}
	if cw.Sunrise != nil {
		fmt.Fprintf(&b, "Sunrise:     %s\n", cw.Sunrise.Format("15:04"))
	} else {
		fmt.Fprintf(&b, "Sunrise:     %s\n", placeholder)
	}
	if cw.Sunset != nil {
		fmt.Fprintf(&b, "Sunset:      %s\n", cw.Sunset.Format("15:04"))
	} else {
		fmt.Fprintf(&b, "Sunset:      %s\n", placeholder)
	}

	return b.String()
}

// FormatDailySummaries renders the aggregated forecast as a table, one row
// per day in the order given. An empty slice yields just the heading.
func FormatDailySummaries(summaries []weather.DailySummary, units weather.Units) string {
	ts := units.TempSuffix()

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-4s %9s %9s %9s  %s\n", "Date", "Day", "Avg", "Max", "Min", "Condition")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%-12s %-4s %8.1f%s %8.1f%s %8.1f%s  %s (%s)\n",
			s.Date, s.Day().Format("Mon"),
			s.AvgTemp, ts, s.MaxTemp, ts, s.MinTemp, ts,
			orPlaceholder(s.Condition), orPlaceholder(s.Description))
	}
	return b.String()
}

// Save writes a report under dir as weather_<city>_<YYYYMMDD_HHMMSS>.txt and
// returns the full path. The city token is sanitized for the filename only;
// the report text itself is written as given.
func Save(dir, city, text string, now time.Time) (string, error) {
	name := fmt.Sprintf("weather_%s_%s.txt", common.SanitizeToken(city), now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func windUnit(u weather.Units) string {
	if u == weather.UnitsImperial {
		return "mph"
	}
	return "m/s"
}
