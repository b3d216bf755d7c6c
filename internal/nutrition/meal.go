package nutrition

import (
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/catalog"
)

var ErrUnknownMealType = errors.New("unknown meal type")

type MealType string

const (
	MealBreakfast   MealType = "breakfast"
	MealLunch       MealType = "lunch"
	MealDinner      MealType = "dinner"
	MealSnack       MealType = "snack"
	MealPreWorkout  MealType = "pre-workout"
	MealPostWorkout MealType = "post-workout"
)

// MealTypes returns all meal types in day order.
func MealTypes() []MealType {
	return []MealType{
		MealBreakfast,
		MealLunch,
		MealDinner,
		MealSnack,
		MealPreWorkout,
		MealPostWorkout,
	}
}

func ParseMealType(mealType string) (MealType, error) {
	for _, mt := range MealTypes() {
		if string(mt) == mealType {
			return mt, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownMealType, mealType)
}

// MealItem references a catalog food with a quantity in grams.
// Calories and macros are always derived from it, never stored.
type MealItem struct {
	Food          catalog.FoodItem `json:"food"`
	QuantityGrams float64          `json:"quantityGrams"`
}

// Meal is an ordered list of items of one meal type. Item order is
// display order only, totals are order-independent.
type Meal struct {
	Type  MealType   `json:"type"`
	Items []MealItem `json:"items"`
}
