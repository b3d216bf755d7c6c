package catalog

import (
	"errors"
	"fmt"
)

var ErrFoodNotFound = errors.New("food item not found")

// ErrDataIntegrity marks catalog entries with invalid nutrition data,
// e.g. negative per-100g values. Such entries are surfaced to the caller,
// never silently clamped.
var ErrDataIntegrity = errors.New("catalog data integrity error")

// FoodItem is a catalog entry with per-100g nutrition values.
// Catalog entries are immutable within a session.
type FoodItem struct {
	ID                 string  `json:"id"`
	NameEn             string  `json:"nameEn"`
	NameAr             string  `json:"nameAr"`
	Category           string  `json:"category"`
	FoodType           string  `json:"foodType"`
	CaloriesPer100g    int     `json:"caloriesPer100g"`
	ProteinPer100g     float64 `json:"proteinPer100g"`
	CarbsPer100g       float64 `json:"carbsPer100g"`
	FatPer100g         float64 `json:"fatPer100g"`
	FiberPer100g       float64 `json:"fiberPer100g"`
	ServingSizeGrams   float64 `json:"servingSizeGrams"`
	ServingDescription string  `json:"servingDescription"`
	IsPopular          bool    `json:"isPopular"`
}

// Validate checks the catalog invariants: per-100g fields non-negative,
// serving size positive.
func (f FoodItem) Validate() error {
	if f.CaloriesPer100g < 0 {
		return fmt.Errorf("%w: food [%s] has negative calories", ErrDataIntegrity, f.ID)
	}
	if f.ProteinPer100g < 0 || f.CarbsPer100g < 0 || f.FatPer100g < 0 || f.FiberPer100g < 0 {
		return fmt.Errorf("%w: food [%s] has negative macros", ErrDataIntegrity, f.ID)
	}
	if f.ServingSizeGrams <= 0 {
		return fmt.Errorf("%w: food [%s] has non-positive serving size", ErrDataIntegrity, f.ID)
	}
	return nil
}

// CategoryAll is the sentinel that bypasses category/muscle/equipment filters.
const CategoryAll = "all"

type FoodCategory struct {
	ID     string `json:"id"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
}

// FoodCategories returns the fixed set of food categories used by pickers.
func FoodCategories() []FoodCategory {
	return []FoodCategory{
		{ID: CategoryAll, NameEn: "All", NameAr: "الكل"},
		{ID: "egyptian", NameEn: "Egyptian", NameAr: "مصري"},
		{ID: "healthy", NameEn: "Healthy", NameAr: "صحي"},
		{ID: "protein", NameEn: "Protein", NameAr: "بروتين"},
		{ID: "carbs", NameEn: "Carbs", NameAr: "كربوهيدرات"},
		{ID: "fruits", NameEn: "Fruits", NameAr: "فواكه"},
		{ID: "vegetables", NameEn: "Vegetables", NameAr: "خضار"},
		{ID: "dairy", NameEn: "Dairy", NameAr: "ألبان"},
		{ID: "sweets", NameEn: "Sweets", NameAr: "حلويات"},
		{ID: "drinks", NameEn: "Drinks", NameAr: "مشروبات"},
	}
}
