package schema

import (
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type FoodItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// MealEntry is one validated meal log record handed in by the
// persistence layer. Magnitudes are non-negative by contract.
type MealEntry struct {
	ChildID   string     `json:"child_id"`
	MealType  MealType   `json:"meal_type"`
	FoodItems []FoodItem `json:"food_items"`
	Calories  float64    `json:"calories"`
	ProteinG  float64    `json:"protein_g"`
	CarbsG    float64    `json:"carbs_g"`
	FatG      float64    `json:"fat_g"`
	FiberG    float64    `json:"fiber_g"`
	SodiumMG  float64    `json:"sodium_mg"`
	EatenAt   time.Time  `json:"eaten_at"`
}

type NutritionTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SodiumMG float64 `json:"sodium_mg"`
}

// Add accumulates one entry into the totals.
func (t *NutritionTotals) Add(e MealEntry) {
	t.Calories += e.Calories
	t.ProteinG += e.ProteinG
	t.CarbsG += e.CarbsG
	t.FatG += e.FatG
	t.FiberG += e.FiberG
	t.SodiumMG += e.SodiumMG
}

type WindowGranularity string

const (
	WindowDay  WindowGranularity = "day"
	WindowWeek WindowGranularity = "week"
)

// Days returns the nominal day count of one window, used to scale
// daily nutrient targets.
func (g WindowGranularity) Days() int {
	if g == WindowWeek {
		return 7
	}
	return 1
}

// NutritionWindowSummary is the aggregate of all meal entries inside
// one time window. Windows with no entries are never produced.
type NutritionWindowSummary struct {
	ChildID     string           `json:"child_id"`
	WindowStart time.Time        `json:"window_start"`
	WindowEnd   time.Time        `json:"window_end"`
	Totals      NutritionTotals  `json:"totals"`
	MealCount   int              `json:"meal_count"`
	MealsByType map[MealType]int `json:"meals_by_type"`
}

type Nutrient string

const (
	NutrientCalories Nutrient = "calories"
	NutrientProtein  Nutrient = "protein"
	NutrientCarbs    Nutrient = "carbs"
	NutrientFat      Nutrient = "fat"
	NutrientFiber    Nutrient = "fiber"
	NutrientSodium   Nutrient = "sodium"
)

type AdequacyStatus string

const (
	AdequacyDeficient AdequacyStatus = "deficient"
	AdequacyAdequate  AdequacyStatus = "adequate"
	AdequacyExcessive AdequacyStatus = "excessive"
)

// WindowReport pairs a window summary with its adequacy evaluation.
type WindowReport struct {
	Summary         NutritionWindowSummary      `json:"summary"`
	Adequacy        map[Nutrient]AdequacyStatus `json:"adequacy"`
	Recommendations []string                    `json:"recommendations"`
}

// NutritionReport is the full nutrition analytics output for one child
// over the supplied meal history.
type NutritionReport struct {
	ID              string            `json:"id"`
	ChildID         string            `json:"child_id"`
	GeneratedAt     time.Time         `json:"generated_at"`
	Granularity     WindowGranularity `json:"granularity"`
	TotalEntries    int               `json:"total_entries"`
	DailyAverages   NutritionTotals   `json:"daily_averages"`
	MostCommonFoods []string          `json:"most_common_foods"`
	Windows         []WindowReport    `json:"windows"`
}
