package consts

import (
	"github.com/sproutlog/sproutlog-api/schema"
)

// Adequacy thresholds: intake below AdequacyLowFactor of the target low
// bound is deficient, above AdequacyHighFactor of the high bound is
// excessive.
const (
	AdequacyLowFactor  = 0.9
	AdequacyHighFactor = 1.1
)

// MostCommonFoodsLimit caps the most-common-foods list in a nutrition
// report.
const MostCommonFoodsLimit = 5

// Trend sample counts that bound the confidence levels.
const (
	TrendMinSamples          = 2
	TrendMediumConfidenceMin = 3
	TrendHighConfidenceMin   = 6
)

// RecommendationPriority fixes the order recommendations are emitted
// in, so report output stays deterministic.
var RecommendationPriority = []schema.Nutrient{
	schema.NutrientCalories,
	schema.NutrientProtein,
	schema.NutrientCarbs,
	schema.NutrientFat,
	schema.NutrientFiber,
	schema.NutrientSodium,
}
