package score

import (
	"sort"
	"time"

	"github.com/sproutlog/sproutlog-api/schema"
)

// AggregateMeals buckets meal entries into day or week windows and sums
// their nutrient totals. Day windows are aligned to UTC midnight, week
// windows to the given week-start day. Only windows with at least one
// entry are produced, ordered ascending by window start. Entries with
// identical timestamps all count.
func AggregateMeals(entries []schema.MealEntry, granularity schema.WindowGranularity, weekStart time.Weekday) []schema.NutritionWindowSummary {
	buckets := map[time.Time]*schema.NutritionWindowSummary{}

	for _, entry := range entries {
		start := windowStart(entry.EatenAt, granularity, weekStart)

		summary, ok := buckets[start]
		if !ok {
			summary = &schema.NutritionWindowSummary{
				ChildID:     entry.ChildID,
				WindowStart: start,
				WindowEnd:   start.AddDate(0, 0, granularity.Days()),
				MealsByType: map[schema.MealType]int{},
			}
			buckets[start] = summary
		}

		summary.Totals.Add(entry)
		summary.MealCount++
		summary.MealsByType[entry.MealType]++
	}

	summaries := make([]schema.NutritionWindowSummary, 0, len(buckets))
	for _, summary := range buckets {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WindowStart.Before(summaries[j].WindowStart)
	})

	return summaries
}

// windowStart returns the UTC start of the window containing ts.
func windowStart(ts time.Time, granularity schema.WindowGranularity, weekStart time.Weekday) time.Time {
	ts = ts.UTC()
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	if granularity != schema.WindowWeek {
		return day
	}

	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}
