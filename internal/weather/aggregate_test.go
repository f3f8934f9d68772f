package weather

import (
	"testing"
	"time"
)

func rec(ts time.Time, temp float64, cond string) ForecastRecord {
	return ForecastRecord{
		Timestamp:   ts,
		Temperature: temp,
		ConditionID: 800,
		Condition:   cond,
		Description: "generic " + cond,
	}
}

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateDaily_Empty(t *testing.T) {
	if got := AggregateDaily(nil); len(got) != 0 {
		t.Fatalf("expected empty output for empty input, got %d summaries", len(got))
	}
}

func TestAggregateDaily_CapsAtFiveDays(t *testing.T) {
	var records []ForecastRecord
	for d := 1; d <= 7; d++ {
		records = append(records, rec(day(d).Add(12*time.Hour), 20, "Clear"))
	}

	got := AggregateDaily(records)
	if len(got) != MaxForecastDays {
		t.Fatalf("expected %d summaries, got %d", MaxForecastDays, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Date >= got[i].Date {
			t.Fatalf("dates not strictly ascending: %s then %s", got[i-1].Date, got[i].Date)
		}
	}
	if got[0].Date != "2026-08-01" || got[4].Date != "2026-08-05" {
		t.Fatalf("expected first five days, got %s..%s", got[0].Date, got[4].Date)
	}
}

func TestAggregateDaily_Stats(t *testing.T) {
	records := []ForecastRecord{
		rec(day(1).Add(6*time.Hour), 10, "Clear"),
		rec(day(1).Add(9*time.Hour), 14, "Clear"),
		rec(day(1).Add(12*time.Hour), 18, "Clouds"),
	}

	got := AggregateDaily(records)
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	s := got[0]
	if s.MinTemp != 10 || s.MaxTemp != 18 {
		t.Errorf("min/max = %.1f/%.1f, want 10/18", s.MinTemp, s.MaxTemp)
	}
	if s.AvgTemp != 14 {
		t.Errorf("avg = %.1f, want 14", s.AvgTemp)
	}
	if s.MinTemp > s.AvgTemp || s.AvgTemp > s.MaxTemp {
		t.Errorf("sanity invariant violated: %v", s)
	}
	if s.Records != 3 {
		t.Errorf("record count = %d, want 3", s.Records)
	}
}

func TestAggregateDaily_SingletonDay(t *testing.T) {
	got := AggregateDaily([]ForecastRecord{rec(day(2).Add(3*time.Hour), 7.5, "Mist")})
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	s := got[0]
	if s.MinTemp != 7.5 || s.AvgTemp != 7.5 || s.MaxTemp != 7.5 {
		t.Errorf("singleton day should collapse stats, got min=%v avg=%v max=%v",
			s.MinTemp, s.AvgTemp, s.MaxTemp)
	}
}

func TestAggregateDaily_ConsensusTieBreak(t *testing.T) {
	// Equal frequency: first-seen wins, not alphabetical order.
	records := []ForecastRecord{
		rec(day(1).Add(0*time.Hour), 10, "Snow"),
		rec(day(1).Add(3*time.Hour), 10, "Clear"),
		rec(day(1).Add(6*time.Hour), 10, "Snow"),
		rec(day(1).Add(9*time.Hour), 10, "Clear"),
	}

	got := AggregateDaily(records)
	if got[0].Condition != "Snow" {
		t.Errorf("tie-break picked %q, want first-seen %q", got[0].Condition, "Snow")
	}
}

func TestAggregateDaily_RepresentativeFromFirstRecord(t *testing.T) {
	// Consensus condition and representative code/description are allowed to
	// disagree: the latter always come from the day's first record.
	records := []ForecastRecord{
		{Timestamp: day(1).Add(2 * time.Hour), Temperature: 9, ConditionID: 741, Condition: "Fog", Description: "fog"},
		{Timestamp: day(1).Add(5 * time.Hour), Temperature: 11, ConditionID: 500, Condition: "Rain", Description: "light rain"},
		{Timestamp: day(1).Add(8 * time.Hour), Temperature: 12, ConditionID: 501, Condition: "Rain", Description: "moderate rain"},
	}

	got := AggregateDaily(records)
	s := got[0]
	if s.Condition != "Rain" {
		t.Errorf("consensus = %q, want Rain", s.Condition)
	}
	if s.ConditionID != 741 || s.Description != "fog" {
		t.Errorf("representative fields = (%d, %q), want first record's (741, fog)",
			s.ConditionID, s.Description)
	}
}

func TestAggregateDaily_MidnightBoundary(t *testing.T) {
	// Two records two minutes apart straddling midnight belong to different
	// days: grouping keys on the date part only.
	records := []ForecastRecord{
		rec(time.Date(2026, time.August, 1, 23, 59, 0, 0, time.UTC), 15, "Clear"),
		rec(time.Date(2026, time.August, 2, 0, 1, 0, 0, time.UTC), 15, "Clear"),
	}

	got := AggregateDaily(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 day groups across midnight, got %d", len(got))
	}
}

func TestAggregateDaily_FullFiveDayWindow(t *testing.T) {
	// 40 three-hour records over exactly 5 days, 8 per day. Day 3 carries a
	// 5-vs-3 Rain/Clouds split.
	dayThree := []string{"Rain", "Rain", "Clouds", "Rain", "Clouds", "Clouds", "Rain", "Rain"}

	var records []ForecastRecord
	for d := 0; d < 5; d++ {
		for h := 0; h < 8; h++ {
			cond := "Clear"
			if d == 2 {
				cond = dayThree[h]
			}
			ts := day(10 + d).Add(time.Duration(h*3) * time.Hour)
			records = append(records, rec(ts, 20+float64(d), cond))
		}
	}

	got := AggregateDaily(records)
	if len(got) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(got))
	}
	if got[2].Condition != "Rain" {
		t.Errorf("day 3 consensus = %q, want Rain (5 vs 3)", got[2].Condition)
	}
	for _, s := range got {
		if s.Records != 8 {
			t.Errorf("day %s has %d records, want 8", s.Date, s.Records)
		}
	}
}
