package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sproutlog/sproutlog-api/schema"
)

func mealAt(ts time.Time, mealType schema.MealType, calories, protein, carbs, fat float64) schema.MealEntry {
	return schema.MealEntry{
		ChildID:  "child-agg-test",
		MealType: mealType,
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		EatenAt:  ts,
	}
}

func TestAggregateMealsDailyWindows(t *testing.T) {
	day1 := time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 6, 19, 0, 0, 0, time.UTC)

	summaries := AggregateMeals([]schema.MealEntry{
		mealAt(day1, schema.MealBreakfast, 300, 10, 40, 12),
		mealAt(day1.Add(5*time.Hour), schema.MealLunch, 450, 18, 55, 15),
		mealAt(day2, schema.MealDinner, 500, 20, 60, 18),
	}, schema.WindowDay, time.Monday)

	assert.Equal(t, 2, len(summaries))

	first := summaries[0]
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), first.WindowStart)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), first.WindowEnd)
	assert.Equal(t, 750.0, first.Totals.Calories)
	assert.Equal(t, 28.0, first.Totals.ProteinG)
	assert.Equal(t, 2, first.MealCount)
	assert.Equal(t, 1, first.MealsByType[schema.MealBreakfast])
	assert.Equal(t, 1, first.MealsByType[schema.MealLunch])

	// no empty window is synthesized for March 5
	second := summaries[1]
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), second.WindowStart)
	assert.Equal(t, 1, second.MealCount)
}

func TestAggregateMealsWeeklyWindows(t *testing.T) {
	// 2024-03-06 is a Wednesday, 2024-03-10 a Sunday: same Monday-based
	// week; 2024-03-11 starts the next one
	entries := []schema.MealEntry{
		mealAt(time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC), schema.MealLunch, 400, 15, 50, 14),
		mealAt(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), schema.MealDinner, 550, 22, 65, 20),
		mealAt(time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC), schema.MealBreakfast, 320, 12, 45, 11),
	}

	summaries := AggregateMeals(entries, schema.WindowWeek, time.Monday)
	assert.Equal(t, 2, len(summaries))
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), summaries[0].WindowStart)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), summaries[0].WindowEnd)
	assert.Equal(t, 950.0, summaries[0].Totals.Calories)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), summaries[1].WindowStart)
}

func TestAggregateMealsWeekStartSunday(t *testing.T) {
	// with Sunday as week start, 2024-03-10 (Sunday) opens a new window
	entries := []schema.MealEntry{
		mealAt(time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), schema.MealLunch, 400, 15, 50, 14),
		mealAt(time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC), schema.MealDinner, 550, 22, 65, 20),
	}

	summaries := AggregateMeals(entries, schema.WindowWeek, time.Sunday)
	assert.Equal(t, 2, len(summaries))
	assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), summaries[0].WindowStart)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), summaries[1].WindowStart)
}

func TestAggregateMealsConservation(t *testing.T) {
	base := time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)
	entries := []schema.MealEntry{}
	var wantCalories, wantProtein, wantSodium float64
	for i := 0; i < 17; i++ {
		entry := mealAt(base.Add(time.Duration(i*9)*time.Hour), schema.MealSnack, float64(100+i*7), float64(3+i), float64(20+i*2), float64(4+i))
		entry.FiberG = float64(i)
		entry.SodiumMG = float64(50 * i)
		entries = append(entries, entry)
		wantCalories += entry.Calories
		wantProtein += entry.ProteinG
		wantSodium += entry.SodiumMG
	}

	for _, granularity := range []schema.WindowGranularity{schema.WindowDay, schema.WindowWeek} {
		var gotCalories, gotProtein, gotSodium float64
		var gotMeals int
		for _, summary := range AggregateMeals(entries, granularity, time.Monday) {
			gotCalories += summary.Totals.Calories
			gotProtein += summary.Totals.ProteinG
			gotSodium += summary.Totals.SodiumMG
			gotMeals += summary.MealCount
		}
		assert.Equal(t, wantCalories, gotCalories)
		assert.Equal(t, wantProtein, gotProtein)
		assert.Equal(t, wantSodium, gotSodium)
		assert.Equal(t, len(entries), gotMeals)
	}
}

func TestAggregateMealsIdenticalTimestampsBothCount(t *testing.T) {
	ts := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	summaries := AggregateMeals([]schema.MealEntry{
		mealAt(ts, schema.MealLunch, 200, 8, 25, 7),
		mealAt(ts, schema.MealLunch, 200, 8, 25, 7),
	}, schema.WindowDay, time.Monday)

	assert.Equal(t, 1, len(summaries))
	assert.Equal(t, 2, summaries[0].MealCount)
	assert.Equal(t, 400.0, summaries[0].Totals.Calories)
}

func TestAggregateMealsIdempotent(t *testing.T) {
	entries := []schema.MealEntry{
		mealAt(time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), schema.MealBreakfast, 300, 10, 40, 12),
		mealAt(time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC), schema.MealLunch, 450, 18, 55, 15),
		mealAt(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), schema.MealBreakfast, 310, 11, 42, 12),
	}

	first := AggregateMeals(entries, schema.WindowDay, time.Monday)
	second := AggregateMeals(entries, schema.WindowDay, time.Monday)
	assert.Equal(t, first, second)
}

func TestAggregateMealsEmptyInput(t *testing.T) {
	assert.Empty(t, AggregateMeals(nil, schema.WindowDay, time.Monday))
}

func TestAggregateMealsNonUTCTimestampsAlignToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 2024-03-05 06:00 +10:00 is 2024-03-04 20:00 UTC
	summaries := AggregateMeals([]schema.MealEntry{
		mealAt(time.Date(2024, 3, 5, 6, 0, 0, 0, loc), schema.MealBreakfast, 300, 10, 40, 12),
	}, schema.WindowDay, time.Monday)

	assert.Equal(t, 1, len(summaries))
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), summaries[0].WindowStart)
}
