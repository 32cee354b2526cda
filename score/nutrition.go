package score

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sproutlog/sproutlog-api/consts"
	"github.com/sproutlog/sproutlog-api/schema"
)

var ErrEmptyMealHistory = fmt.Errorf("meal history is empty")

// NutritionService builds nutrition reports from a child's meal log.
// Stateless apart from configuration; safe for concurrent use.
type NutritionService struct {
	weekStart time.Weekday
}

// NewNutritionService reads the week-start day from the
// `nutrition.week_start` config key (default monday).
func NewNutritionService() *NutritionService {
	viper.SetDefault("nutrition.week_start", "monday")
	return &NutritionService{
		weekStart: parseWeekday(viper.GetString("nutrition.week_start")),
	}
}

// BuildReport aggregates the meal entries into windows of the requested
// granularity and evaluates each window against the age-band targets.
// It fails with ErrEmptyMealHistory when no entries are supplied.
func (s *NutritionService) BuildReport(childID string, ageInDays int, entries []schema.MealEntry, granularity schema.WindowGranularity, langs ...string) (*schema.NutritionReport, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyMealHistory
	}

	summaries := AggregateMeals(entries, granularity, s.weekStart)

	windows := make([]schema.WindowReport, 0, len(summaries))
	for _, summary := range summaries {
		adequacy, recommendations := EvaluateNutrition(summary, ageInDays, langs...)
		windows = append(windows, schema.WindowReport{
			Summary:         summary,
			Adequacy:        adequacy,
			Recommendations: recommendations,
		})
	}

	return &schema.NutritionReport{
		ID:              uuid.NewString(),
		ChildID:         childID,
		GeneratedAt:     time.Now().UTC(),
		Granularity:     granularity,
		TotalEntries:    len(entries),
		DailyAverages:   dailyAverages(entries),
		MostCommonFoods: mostCommonFoods(entries, consts.MostCommonFoodsLimit),
		Windows:         windows,
	}, nil
}

// dailyAverages divides the overall totals by the number of distinct
// UTC days that have at least one entry.
func dailyAverages(entries []schema.MealEntry) schema.NutritionTotals {
	var totals schema.NutritionTotals
	days := map[time.Time]struct{}{}
	for _, entry := range entries {
		totals.Add(entry)
		days[windowStart(entry.EatenAt, schema.WindowDay, time.Monday)] = struct{}{}
	}

	n := float64(len(days))
	if n == 0 {
		return totals
	}
	return schema.NutritionTotals{
		Calories: totals.Calories / n,
		ProteinG: totals.ProteinG / n,
		CarbsG:   totals.CarbsG / n,
		FatG:     totals.FatG / n,
		FiberG:   totals.FiberG / n,
		SodiumMG: totals.SodiumMG / n,
	}
}

// mostCommonFoods returns the top food item names by occurrence, ties
// broken alphabetically to keep report output deterministic.
func mostCommonFoods(entries []schema.MealEntry, limit int) []string {
	counts := map[string]int{}
	for _, entry := range entries {
		for _, item := range entry.FoodItems {
			counts[item.Name]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func parseWeekday(name string) time.Weekday {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if day, ok := weekdays[strings.ToLower(name)]; ok {
		return day
	}

	log.WithField("week_start", name).Warn("unknown week start day, fall back to monday")
	return time.Monday
}
