package weather

import (
	"sort"
)

// MaxForecastDays caps how many calendar days AggregateDaily returns.
const MaxForecastDays = 5

// AggregateDaily groups forecast records by calendar day and reduces each day
// to a DailySummary. Days are returned in ascending date order; only the
// first MaxForecastDays distinct days are kept even when the input spans
// more. An empty input yields an empty result.
//
// Grouping keys on the date portion of the record timestamp only, so records
// straddling midnight land in different days regardless of how close together
// they are.
func AggregateDaily(records []ForecastRecord) []DailySummary {
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string][]ForecastRecord)
	for _, r := range records {
		k := r.DayKey()
		groups[k] = append(groups[k], r)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > MaxForecastDays {
		keys = keys[:MaxForecastDays]
	}

	summaries := make([]DailySummary, 0, len(keys))
	for _, k := range keys {
		summaries = append(summaries, summarizeDay(k, groups[k]))
	}
	return summaries
}

// summarizeDay reduces one day group (chronological order preserved from the
// input) to its summary. Callers guarantee the group is non-empty.
func summarizeDay(day string, group []ForecastRecord) DailySummary {
	var sum float64
	maxT := group[0].Temperature
	minT := group[0].Temperature

	counts := make(map[string]int, len(group))
	for _, r := range group {
		sum += r.Temperature
		if r.Temperature > maxT {
			maxT = r.Temperature
		}
		if r.Temperature < minT {
			minT = r.Temperature
		}
		counts[r.Condition]++
	}

	// Pick the most frequent condition; scanning the group in its original
	// order makes ties resolve to the first-seen candidate.
	consensus := group[0].Condition
	best := 0
	for _, r := range group {
		if c := counts[r.Condition]; c > best {
			best = c
			consensus = r.Condition
		}
	}

	return DailySummary{
		Date:        day,
		AvgTemp:     sum / float64(len(group)),
		MaxTemp:     maxT,
		MinTemp:     minT,
		Condition:   consensus,
		ConditionID: group[0].ConditionID,
		Description: group[0].Description,
		Records:     len(group),
	}
}
