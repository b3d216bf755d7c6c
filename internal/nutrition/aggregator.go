package nutrition

// Totals is the aggregate shape for a meal or a whole day.
type Totals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealTotal sums scaled calories and macros over all items of a meal.
// Fails entirely on the first invalid item, no partial sums.
func MealTotal(meal Meal) (Totals, error) {
	var total Totals
	for _, item := range meal.Items {
		calories, err := ScaledCalories(item.Food, item.QuantityGrams)
		if err != nil {
			return Totals{}, err
		}
		macros, err := ScaledMacros(item.Food, item.QuantityGrams)
		if err != nil {
			return Totals{}, err
		}

		total.Calories += calories
		total.Protein += macros.Protein
		total.Carbs += macros.Carbs
		total.Fat += macros.Fat
	}

	total.Protein = roundToOneDecimal(total.Protein)
	total.Carbs = roundToOneDecimal(total.Carbs)
	total.Fat = roundToOneDecimal(total.Fat)

	return total, nil
}

// DayTotal sums MealTotal across all meals of a day. Totals are always
// reconstructable by re-summing current items; nothing is cached.
func DayTotal(meals []Meal) (Totals, error) {
	var day Totals
	for _, meal := range meals {
		mealTotal, err := MealTotal(meal)
		if err != nil {
			return Totals{}, err
		}
		day.Calories += mealTotal.Calories
		day.Protein += mealTotal.Protein
		day.Carbs += mealTotal.Carbs
		day.Fat += mealTotal.Fat
	}

	day.Protein = roundToOneDecimal(day.Protein)
	day.Carbs = roundToOneDecimal(day.Carbs)
	day.Fat = roundToOneDecimal(day.Fat)

	return day, nil
}

// RemainingCalories may be negative when over target: presenting that
// as an "over goal" state (or clamping) is a display concern.
func RemainingCalories(dayTotal Totals, target DailyTarget) int {
	return target.Calories - dayTotal.Calories
}

// PercentOfTarget returns the true percentage, deliberately unclamped,
// so callers can distinguish "on track" from "exceeded". A non-positive
// target yields 0.
func PercentOfTarget(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return 100 * value / target
}
