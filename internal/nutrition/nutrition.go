package nutrition

import (
	"errors"
	"fmt"
	"math"

	"github.com/2beens/fittrack/internal/catalog"
)

// ErrInvalidQuantity is returned for non-positive gram quantities.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Macros holds gram values rounded to one decimal place.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Protein: roundToOneDecimal(m.Protein + other.Protein),
		Carbs:   roundToOneDecimal(m.Carbs + other.Carbs),
		Fat:     roundToOneDecimal(m.Fat + other.Fat),
		Fiber:   roundToOneDecimal(m.Fiber + other.Fiber),
	}
}

// ScaledCalories scales the per-100g calories of a food to the given
// quantity, rounded half-up to the nearest integer. Pure function:
// bad catalog data is surfaced, never clamped.
func ScaledCalories(food catalog.FoodItem, quantityGrams float64) (int, error) {
	if quantityGrams <= 0 {
		return 0, fmt.Errorf("%w: %.1f grams", ErrInvalidQuantity, quantityGrams)
	}
	if err := food.Validate(); err != nil {
		return 0, err
	}

	factor := quantityGrams / 100
	return int(math.Round(float64(food.CaloriesPer100g) * factor)), nil
}

// ScaledMacros scales the per-100g macros of a food to the given
// quantity, each value rounded to one decimal place.
func ScaledMacros(food catalog.FoodItem, quantityGrams float64) (Macros, error) {
	if quantityGrams <= 0 {
		return Macros{}, fmt.Errorf("%w: %.1f grams", ErrInvalidQuantity, quantityGrams)
	}
	if err := food.Validate(); err != nil {
		return Macros{}, err
	}

	factor := quantityGrams / 100
	return Macros{
		Protein: roundToOneDecimal(food.ProteinPer100g * factor),
		Carbs:   roundToOneDecimal(food.CarbsPer100g * factor),
		Fat:     roundToOneDecimal(food.FatPer100g * factor),
		Fiber:   roundToOneDecimal(food.FiberPer100g * factor),
	}, nil
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
