package score

import (
	"math"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/sproutlog/sproutlog-api/consts"
	"github.com/sproutlog/sproutlog-api/schema"
	"github.com/sproutlog/sproutlog-api/utils"
)

// EvaluateNutrition compares one window summary against the daily
// targets for the child's age band, scaled to the window's day count.
// Intake below AdequacyLowFactor of the target low bound is deficient,
// above AdequacyHighFactor of the high bound excessive. Fiber carries a
// minimum-only target and sodium a maximum-only one.
//
// Recommendations are localized strings emitted in the fixed priority
// order of consts.RecommendationPriority, so output is deterministic
// for a given adequacy set. A fully adequate window yields a single
// balanced-intake note.
func EvaluateNutrition(summary schema.NutritionWindowSummary, ageInDays int, langs ...string) (map[schema.Nutrient]schema.AdequacyStatus, []string) {
	days := windowDays(summary)
	targets := schema.TargetsForAge(ageInDays)

	adequacy := map[schema.Nutrient]schema.AdequacyStatus{
		schema.NutrientCalories: classifyRange(summary.Totals.Calories, targets.Calories, days),
		schema.NutrientProtein:  classifyRange(summary.Totals.ProteinG, targets.ProteinG, days),
		schema.NutrientCarbs:    classifyRange(summary.Totals.CarbsG, targets.CarbsG, days),
		schema.NutrientFat:      classifyRange(summary.Totals.FatG, targets.FatG, days),
		schema.NutrientFiber:    classifyMinimum(summary.Totals.FiberG, targets.FiberG, days),
		schema.NutrientSodium:   classifyMaximum(summary.Totals.SodiumMG, targets.SodiumMG, days),
	}

	localizer := utils.NewLocalizer(langs...)
	recommendations := []string{}
	for _, nutrient := range consts.RecommendationPriority {
		switch adequacy[nutrient] {
		case schema.AdequacyDeficient:
			recommendations = append(recommendations, localize(localizer, increaseMessages[nutrient]))
		case schema.AdequacyExcessive:
			recommendations = append(recommendations, localize(localizer, reduceMessages[nutrient]))
		}
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, localize(localizer, msgBalanced))
	}

	return adequacy, recommendations
}

// windowDays derives the nominal day count from the window bounds.
func windowDays(summary schema.NutritionWindowSummary) float64 {
	days := math.Round(summary.WindowEnd.Sub(summary.WindowStart).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func classifyRange(total float64, target schema.TargetRange, days float64) schema.AdequacyStatus {
	if total < consts.AdequacyLowFactor*target.Low*days {
		return schema.AdequacyDeficient
	}
	if total > consts.AdequacyHighFactor*target.High*days {
		return schema.AdequacyExcessive
	}
	return schema.AdequacyAdequate
}

func classifyMinimum(total, minimum, days float64) schema.AdequacyStatus {
	if minimum > 0 && total < consts.AdequacyLowFactor*minimum*days {
		return schema.AdequacyDeficient
	}
	return schema.AdequacyAdequate
}

func classifyMaximum(total, maximum, days float64) schema.AdequacyStatus {
	if maximum > 0 && total > consts.AdequacyHighFactor*maximum*days {
		return schema.AdequacyExcessive
	}
	return schema.AdequacyAdequate
}

func localize(localizer *i18n.Localizer, msg *i18n.Message) string {
	out, err := localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: msg})
	if err != nil {
		return msg.Other
	}
	return out
}

var increaseMessages = map[schema.Nutrient]*i18n.Message{
	schema.NutrientCalories: {
		ID:    "recommendations.calories.increase",
		Other: "Increase daily calorie intake toward the target range for this age.",
	},
	schema.NutrientProtein: {
		ID:    "recommendations.protein.increase",
		Other: "Increase protein intake with eggs, dairy, beans or meat.",
	},
	schema.NutrientCarbs: {
		ID:    "recommendations.carbs.increase",
		Other: "Add whole-grain carbohydrates to reach the target range.",
	},
	schema.NutrientFat: {
		ID:    "recommendations.fat.increase",
		Other: "Add healthy fats such as avocado, nut butter or oily fish.",
	},
	schema.NutrientFiber: {
		ID:    "recommendations.fiber.increase",
		Other: "Include more fruits, vegetables and whole grains for fiber.",
	},
}

var reduceMessages = map[schema.Nutrient]*i18n.Message{
	schema.NutrientCalories: {
		ID:    "recommendations.calories.reduce",
		Other: "Daily calorie intake is high for this age; consider smaller portions.",
	},
	schema.NutrientProtein: {
		ID:    "recommendations.protein.reduce",
		Other: "Reduce protein intake toward the target range.",
	},
	schema.NutrientCarbs: {
		ID:    "recommendations.carbs.reduce",
		Other: "Reduce carbohydrate intake, especially sugary foods.",
	},
	schema.NutrientFat: {
		ID:    "recommendations.fat.reduce",
		Other: "Reduce fat intake, favoring lean proteins.",
	},
	schema.NutrientSodium: {
		ID:    "recommendations.sodium.reduce",
		Other: "Reduce sodium intake; limit processed foods.",
	},
}

var msgBalanced = &i18n.Message{
	ID:    "recommendations.balanced",
	Other: "Nutritional intake looks well balanced.",
}
