package catalog

import (
	"sort"
	"strings"
)

// FoodFilter narrows a food catalog. Zero values (or the "all" sentinel)
// mean "no filter" for the respective field. Active filters are ANDed.
type FoodFilter struct {
	Category string
	Search   string
}

// ExerciseFilter narrows an exercise catalog, same sentinel semantics
// as FoodFilter.
type ExerciseFilter struct {
	MuscleGroup string
	Equipment   string
	Search      string
}

// FilterFoods is a pure function over the given slice: it never mutates
// the input and can be re-run with the same result. Results are ordered
// popular-first; within the same popularity flag the catalog (insertion)
// order is kept.
func FilterFoods(foods []FoodItem, filter FoodFilter) []FoodItem {
	search := normalizeSearch(filter.Search)

	var result []FoodItem
	for _, f := range foods {
		if !tagMatches(filter.Category, f.Category) {
			continue
		}
		if search != "" && !nameContains(search, f.NameEn, f.NameAr) {
			continue
		}
		result = append(result, f)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsPopular && !result[j].IsPopular
	})

	return result
}

// FilterExercises filters like FilterFoods, ordered by muscle group
// ascending (lexical), stable within a group.
func FilterExercises(exercises []Exercise, filter ExerciseFilter) []Exercise {
	search := normalizeSearch(filter.Search)

	var result []Exercise
	for _, e := range exercises {
		if !tagMatches(filter.MuscleGroup, e.MuscleGroup) {
			continue
		}
		if !tagMatches(filter.Equipment, e.Equipment) {
			continue
		}
		if search != "" && !nameContains(search, e.NameEn, e.NameAr) {
			continue
		}
		result = append(result, e)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].MuscleGroup < result[j].MuscleGroup
	})

	return result
}

func tagMatches(filterTag, entityTag string) bool {
	if filterTag == "" || filterTag == CategoryAll {
		return true
	}
	return filterTag == entityTag
}

// normalizeSearch treats empty or whitespace-only search text as "no filter".
func normalizeSearch(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

func nameContains(search string, names ...string) bool {
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), search) {
			return true
		}
	}
	return false
}
