// Package chart renders a per-day temperature series as a horizontal
// ASCII bar chart.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// DefaultBarWidth is the bar scale used when no width is configured.
const DefaultBarWidth = 40

// Point is one charted day: its date and the representative temperature.
type Point struct {
	Day  time.Time
	Temp float64
}

// MiddayPoints reduces a 3-hour forecast series to one representative point
// per day: the first record whose hour falls in the 11-13 window (nearest to
// local noon). Days with no such record are silently omitted, so the chart
// may carry fewer bars than the forecast has days. Points come back in
// ascending day order.
func MiddayPoints(records []weather.ForecastRecord) []Point {
	picked := make(map[string]Point)
	keys := make([]string, 0, weather.MaxForecastDays)

	for _, r := range records {
		h := r.Timestamp.Hour()
		if h < 11 || h > 13 {
			continue
		}
		k := r.DayKey()
		if _, ok := picked[k]; ok {
			continue
		}
		picked[k] = Point{Day: r.Timestamp, Temp: r.Temperature}
		keys = append(keys, k)
	}

	sort.Strings(keys)

	points := make([]Point, 0, len(keys))
	for _, k := range keys {
		points = append(points, picked[k])
	}
	return points
}

// Render turns the point series into fixed-width chart lines: header, top
// border, one bar line per day, bottom border, min/max summary. Bars scale
// linearly between the series extremes across barWidth columns and are never
// shorter than one column; a flat series draws every bar at half width.
//
// Fewer than 2 points cannot convey a trend, so Render returns nil instead
// of a degenerate chart. The input is never mutated.
func Render(points []Point, barWidth int) []string {
	if len(points) < 2 || barWidth <= 0 {
		return nil
	}

	minT, maxT := points[0].Temp, points[0].Temp
	for _, p := range points[1:] {
		if p.Temp < minT {
			minT = p.Temp
		}
		if p.Temp > maxT {
			maxT = p.Temp
		}
	}

	inner := barWidth + 18 // "MM-DD Dow  " + bar column + "  temp"
	lines := make([]string, 0, len(points)+4)
	lines = append(lines, "Temperature trend")
	lines = append(lines, "+"+strings.Repeat("-", inner)+"+")

	for _, p := range points {
		n := barLen(p.Temp, minT, maxT, barWidth)
		lines = append(lines, fmt.Sprintf("%s %s  %-*s %7.1f",
			p.Day.Format("01-02"), p.Day.Format("Mon"), barWidth,
			strings.Repeat("#", n), p.Temp))
	}

	lines = append(lines, "+"+strings.Repeat("-", inner)+"+")
	lines = append(lines, fmt.Sprintf("min %.1f  max %.1f", minT, maxT))
	return lines
}

// barLen scales temp into [1, width] columns between the series extremes.
func barLen(temp, minT, maxT float64, width int) int {
	var n int
	if maxT == minT {
		n = width / 2
	} else {
		n = int(math.Round((temp - minT) / (maxT - minT) * float64(width)))
	}
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
