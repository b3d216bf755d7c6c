package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=diary_mocks_test.go -package=nutrition_test

type diaryRepo interface {
	Add(ctx context.Context, item DiaryItem) (*DiaryItem, error)
	Delete(ctx context.Context, userID string, id int) error
	ListDay(ctx context.Context, userID string, day time.Time) ([]DiaryItem, error)
}

type foodSource interface {
	GetFood(ctx context.Context, id string) (*catalog.FoodItem, error)
}

// Diary logs foods into meals per user and day, and derives the day
// summary numbers surfaced to the dashboard. The calorie target is
// always passed in by the caller (profile is an external collaborator),
// never read from ambient state.
type Diary struct {
	repo    diaryRepo
	catalog foodSource
	now     func() time.Time
}

func NewDiary(repo diaryRepo, catalog foodSource) *Diary {
	return &Diary{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

type AddFoodParams struct {
	UserID        string
	Day           time.Time
	MealType      MealType
	FoodID        string
	QuantityGrams float64
}

type AddFoodResult struct {
	Item DiaryItem `json:"item"`
	// Confirmation is a human readable toast string; displaying it
	// (or not) is up to the consumer.
	Confirmation string `json:"confirmation"`
	Calories     int    `json:"calories"`
	Macros       Macros `json:"macros"`
}

// AddFood validates and stores a new diary item. A zero quantity falls
// back to the food's suggested serving size; a negative one is
// rejected with ErrInvalidQuantity.
func (d *Diary) AddFood(ctx context.Context, params AddFoodParams) (_ *AddFoodResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "diary.addFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food, err := d.catalog.GetFood(ctx, params.FoodID)
	if err != nil {
		return nil, fmt.Errorf("get food: %w", err)
	}

	quantity := params.QuantityGrams
	if quantity == 0 {
		quantity = food.ServingSizeGrams
	}

	calories, err := ScaledCalories(*food, quantity)
	if err != nil {
		return nil, err
	}
	macros, err := ScaledMacros(*food, quantity)
	if err != nil {
		return nil, err
	}

	item, err := d.repo.Add(ctx, DiaryItem{
		UserID:        params.UserID,
		Day:           params.Day,
		MealType:      params.MealType,
		FoodID:        params.FoodID,
		QuantityGrams: quantity,
		CreatedAt:     d.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add diary item: %w", err)
	}

	return &AddFoodResult{
		Item:         *item,
		Confirmation: fmt.Sprintf("added %s to %s", food.NameEn, params.MealType),
		Calories:     calories,
		Macros:       macros,
	}, nil
}

// RemoveItem deletes a logged item and returns the toast confirmation.
func (d *Diary) RemoveItem(ctx context.Context, userID string, itemID int) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "diary.removeItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := d.repo.Delete(ctx, userID, itemID); err != nil {
		return "", fmt.Errorf("delete diary item: %w", err)
	}

	return fmt.Sprintf("removed item %d from diary", itemID), nil
}

type ItemSummary struct {
	ID            int     `json:"id"`
	FoodID        string  `json:"foodId"`
	NameEn        string  `json:"nameEn"`
	NameAr        string  `json:"nameAr"`
	QuantityGrams float64 `json:"quantityGrams"`
	Calories      int     `json:"calories"`
	Macros        Macros  `json:"macros"`
}

type MealSummary struct {
	Type   MealType      `json:"type"`
	Items  []ItemSummary `json:"items"`
	Totals Totals        `json:"totals"`
}

type DaySummary struct {
	Day               string        `json:"day"`
	Meals             []MealSummary `json:"meals"`
	Totals            Totals        `json:"totals"`
	Target            DailyTarget   `json:"target"`
	RemainingCalories int           `json:"remainingCalories"`
	// percentages are true values, intentionally not clamped to 100;
	// clamping for ring rendering is a view concern
	PercentCalories float64 `json:"percentCalories"`
	PercentProtein  float64 `json:"percentProtein"`
	PercentCarbs    float64 `json:"percentCarbs"`
	PercentFat      float64 `json:"percentFat"`
}

// DaySummary rebuilds the day's meals from stored items and recomputes
// all totals from scratch. dailyCalorieTarget <= 0 means "no profile
// target", falling back to the documented default.
func (d *Diary) DaySummary(
	ctx context.Context,
	userID string,
	day time.Time,
	dailyCalorieTarget int,
) (_ *DaySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "diary.daySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	items, err := d.repo.ListDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list day items: %w", err)
	}

	meals, itemSummaries, err := d.buildMeals(ctx, items)
	if err != nil {
		return nil, err
	}

	var mealSummaries []MealSummary
	for _, mealType := range MealTypes() {
		meal, ok := meals[mealType]
		if !ok {
			continue
		}
		mealTotal, err := MealTotal(meal)
		if err != nil {
			return nil, err
		}
		mealSummaries = append(mealSummaries, MealSummary{
			Type:   mealType,
			Items:  itemSummaries[mealType],
			Totals: mealTotal,
		})
	}

	var allMeals []Meal
	for _, mealType := range MealTypes() {
		if meal, ok := meals[mealType]; ok {
			allMeals = append(allMeals, meal)
		}
	}
	dayTotal, err := DayTotal(allMeals)
	if err != nil {
		return nil, err
	}

	target := NewDailyTarget(dailyCalorieTarget)

	return &DaySummary{
		Day:               day.Format(time.DateOnly),
		Meals:             mealSummaries,
		Totals:            dayTotal,
		Target:            target,
		RemainingCalories: RemainingCalories(dayTotal, target),
		PercentCalories:   PercentOfTarget(float64(dayTotal.Calories), float64(target.Calories)),
		PercentProtein:    PercentOfTarget(dayTotal.Protein, float64(target.Macros.Protein)),
		PercentCarbs:      PercentOfTarget(dayTotal.Carbs, float64(target.Macros.Carbs)),
		PercentFat:        PercentOfTarget(dayTotal.Fat, float64(target.Macros.Fat)),
	}, nil
}

func (d *Diary) buildMeals(
	ctx context.Context,
	items []DiaryItem,
) (map[MealType]Meal, map[MealType][]ItemSummary, error) {
	meals := make(map[MealType]Meal)
	itemSummaries := make(map[MealType][]ItemSummary)

	for _, item := range items {
		food, err := d.catalog.GetFood(ctx, item.FoodID)
		if err != nil {
			return nil, nil, fmt.Errorf("get food [%s]: %w", item.FoodID, err)
		}

		calories, err := ScaledCalories(*food, item.QuantityGrams)
		if err != nil {
			return nil, nil, err
		}
		macros, err := ScaledMacros(*food, item.QuantityGrams)
		if err != nil {
			return nil, nil, err
		}

		meal := meals[item.MealType]
		meal.Type = item.MealType
		meal.Items = append(meal.Items, MealItem{
			Food:          *food,
			QuantityGrams: item.QuantityGrams,
		})
		meals[item.MealType] = meal

		itemSummaries[item.MealType] = append(itemSummaries[item.MealType], ItemSummary{
			ID:            item.ID,
			FoodID:        item.FoodID,
			NameEn:        food.NameEn,
			NameAr:        food.NameAr,
			QuantityGrams: item.QuantityGrams,
			Calories:      calories,
			Macros:        macros,
		})
	}

	return meals, itemSummaries, nil
}
