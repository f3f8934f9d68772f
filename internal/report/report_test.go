package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

func sampleCurrent() weather.CurrentWeather {
	vis := 10000
	sunrise := time.Date(2026, time.August, 23, 5, 58, 0, 0, time.UTC)
	sunset := time.Date(2026, time.August, 23, 20, 11, 0, 0, time.UTC)
	return weather.CurrentWeather{
		City:        "London",
		Country:     "GB",
		Timestamp:   time.Date(2026, time.August, 23, 14, 0, 0, 0, time.UTC),
		Units:       weather.UnitsMetric,
		Temperature: 18.3,
		FeelsLike:   17.9,
		TempMin:     16.0,
		TempMax:     20.1,
		Humidity:    72,
		Pressure:    1012,
		WindSpeed:   4.6,
		WindDeg:     240,
		Cloudiness:  75,
		ConditionID: 803,
		Condition:   "Clouds",
		Description: "broken clouds",
		Visibility:  &vis,
		Sunrise:     &sunrise,
		Sunset:      &sunset,
	}
}

func TestFormatCurrent_AllFields(t *testing.T) {
	text := FormatCurrent(sampleCurrent())

	for _, want := range []string{
		"Weather report: London, GB",
		"Condition:   Clouds (broken clouds)",
		"Temperature: 18.3°C (feels like 17.9°C)",
		"Visibility:  10000 m",
		"Sunrise:     05:58",
		"Sunset:      20:11",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "N/A") {
		t.Errorf("fully populated payload should not print N/A:\n%s", text)
	}
}

func TestFormatCurrent_MissingOptionalFields(t *testing.T) {
	cw := sampleCurrent()
	cw.Visibility = nil
	cw.Sunrise = nil
	cw.Sunset = nil

	text := FormatCurrent(cw)

	for _, want := range []string{"Visibility:  N/A", "Sunrise:     N/A", "Sunset:      N/A"} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing placeholder line %q:\n%s", want, text)
		}
	}

	// The report keeps its fixed shape: same line count with or without the
	// optional fields.
	full := FormatCurrent(sampleCurrent())
	if strings.Count(text, "\n") != strings.Count(full, "\n") {
		t.Errorf("line count changed when optional fields are absent")
	}
}

func TestFormatDailySummaries(t *testing.T) {
	summaries := []weather.DailySummary{
		{Date: "2026-08-23", AvgTemp: 18.3, MaxTemp: 20.1, MinTemp: 16.0, Condition: "Clouds", Description: "broken clouds"},
		{Date: "2026-08-24", AvgTemp: 21.0, MaxTemp: 24.5, MinTemp: 17.2, Condition: "Clear", Description: "clear sky"},
	}

	text := FormatDailySummaries(summaries, weather.UnitsMetric)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected heading + 2 rows, got %d lines:\n%s", len(lines), text)
	}
	if !strings.Contains(lines[1], "2026-08-23") || !strings.Contains(lines[1], "Sun") {
		t.Errorf("row missing date or weekday: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Clear (clear sky)") {
		t.Errorf("row missing condition: %q", lines[2])
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, time.August, 23, 9, 41, 7, 0, time.UTC)

	path, err := Save(dir, "New York", "report body\n", now)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if want := filepath.Join(dir, "weather_New_York_20260823_094107.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved report: %v", err)
	}
	if string(data) != "report body\n" {
		t.Errorf("saved content = %q", data)
	}
}
