package nutrition

import "math"

// DefaultDailyCalories is used when no calorie target is supplied by
// the profile (or the supplied one is invalid).
const DefaultDailyCalories = 2400

// Fixed energy-ratio split for deriving macro gram targets from a
// daily calorie target.
const (
	proteinCalorieShare = 0.30
	carbsCalorieShare   = 0.40
	fatCalorieShare     = 0.30

	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

// MacroTargets are daily gram targets per macro.
type MacroTargets struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// DailyTarget is derived, never stored: recompute it whenever the
// calorie target changes.
type DailyTarget struct {
	Calories int          `json:"calories"`
	Macros   MacroTargets `json:"macros"`
}

// DeriveTargets converts a daily calorie target into macro gram
// targets using the fixed 30/40/30 split. Non-positive targets fall
// back to DefaultDailyCalories. At 2400 kcal this yields 180g protein,
// 240g carbs and 80g fat.
func DeriveTargets(dailyCalorieTarget int) MacroTargets {
	if dailyCalorieTarget <= 0 {
		dailyCalorieTarget = DefaultDailyCalories
	}

	calories := float64(dailyCalorieTarget)
	return MacroTargets{
		Protein: int(math.Round(calories * proteinCalorieShare / caloriesPerGramProtein)),
		Carbs:   int(math.Round(calories * carbsCalorieShare / caloriesPerGramCarbs)),
		Fat:     int(math.Round(calories * fatCalorieShare / caloriesPerGramFat)),
	}
}

func NewDailyTarget(dailyCalorieTarget int) DailyTarget {
	if dailyCalorieTarget <= 0 {
		dailyCalorieTarget = DefaultDailyCalories
	}
	return DailyTarget{
		Calories: dailyCalorieTarget,
		Macros:   DeriveTargets(dailyCalorieTarget),
	}
}
