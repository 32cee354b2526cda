package schema

// TargetRange is an inclusive daily intake range for one nutrient.
type TargetRange struct {
	Low  float64
	High float64
}

// NutrientTargets holds the daily intake targets for one age band.
// FiberG is a minimum-only target and SodiumMG a maximum-only target;
// the other nutrients carry a full range.
type NutrientTargets struct {
	Calories TargetRange
	ProteinG TargetRange
	CarbsG   TargetRange
	FatG     TargetRange
	FiberG   float64
	SodiumMG float64
}

// AgeBand is a pediatric age bracket keyed by its upper bound in days.
type AgeBand struct {
	Name       string
	MaxAgeDays int
	Targets    NutrientTargets
}

// DefaultAgeBands is the daily nutrient target table, ordered by age.
// Figures follow pediatric dietary reference intakes. Ages beyond the
// last band fall back to the last band.
var DefaultAgeBands = []AgeBand{
	{
		Name:       "0-6m",
		MaxAgeDays: 183,
		Targets: NutrientTargets{
			Calories: TargetRange{Low: 450, High: 700},
			ProteinG: TargetRange{Low: 8, High: 12},
			CarbsG:   TargetRange{Low: 60, High: 95},
			FatG:     TargetRange{Low: 25, High: 36},
			FiberG:   0,
			SodiumMG: 370,
		},
	},
	{
		Name:       "7-12m",
		MaxAgeDays: 365,
		Targets: NutrientTargets{
			Calories: TargetRange{Low: 600, High: 900},
			ProteinG: TargetRange{Low: 10, High: 15},
			CarbsG:   TargetRange{Low: 80, High: 130},
			FatG:     TargetRange{Low: 28, High: 42},
			FiberG:   0,
			SodiumMG: 570,
		},
	},
	{
		Name:       "1-3y",
		MaxAgeDays: 1095,
		Targets: NutrientTargets{
			Calories: TargetRange{Low: 900, High: 1400},
			ProteinG: TargetRange{Low: 13, High: 22},
			CarbsG:   TargetRange{Low: 130, High: 180},
			FatG:     TargetRange{Low: 30, High: 50},
			FiberG:   14,
			SodiumMG: 1200,
		},
	},
	{
		Name:       "4-8y",
		MaxAgeDays: 2922,
		Targets: NutrientTargets{
			Calories: TargetRange{Low: 1200, High: 1800},
			ProteinG: TargetRange{Low: 19, High: 32},
			CarbsG:   TargetRange{Low: 130, High: 230},
			FatG:     TargetRange{Low: 33, High: 62},
			FiberG:   18,
			SodiumMG: 1500,
		},
	},
	{
		Name:       "9-13y",
		MaxAgeDays: 4748,
		Targets: NutrientTargets{
			Calories: TargetRange{Low: 1600, High: 2200},
			ProteinG: TargetRange{Low: 34, High: 52},
			CarbsG:   TargetRange{Low: 130, High: 300},
			FatG:     TargetRange{Low: 44, High: 85},
			FiberG:   22,
			SodiumMG: 1800,
		},
	},
}

// TargetsForAge returns the nutrient targets for a child age. Ages past
// the oldest band use the oldest band.
func TargetsForAge(ageInDays int) NutrientTargets {
	for _, band := range DefaultAgeBands {
		if ageInDays <= band.MaxAgeDays {
			return band.Targets
		}
	}
	return DefaultAgeBands[len(DefaultAgeBands)-1].Targets
}
