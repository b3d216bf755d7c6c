package catalog

import "errors"

var ErrExerciseNotFound = errors.New("exercise not found")

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is an immutable catalog entry for a strength exercise.
type Exercise struct {
	ID                string     `json:"id"`
	NameEn            string     `json:"nameEn"`
	NameAr            string     `json:"nameAr"`
	MuscleGroup       string     `json:"muscleGroup"`
	SecondaryMuscles  []string   `json:"secondaryMuscles,omitempty"`
	Equipment         string     `json:"equipment"`
	Difficulty        Difficulty `json:"difficulty"`
	CaloriesPerMinute float64    `json:"caloriesPerMinute"`
	InstructionsEn    string     `json:"instructionsEn,omitempty"`
	InstructionsAr    string     `json:"instructionsAr,omitempty"`
}

// MuscleGroups returns the known muscle group tags, in display order.
func MuscleGroups() []string {
	return []string{
		"abs",
		"back",
		"biceps",
		"chest",
		"glutes",
		"hamstrings",
		"quads",
		"shoulders",
		"triceps",
	}
}

// EquipmentTypes returns the known equipment tags, in display order.
func EquipmentTypes() []string {
	return []string{
		"barbell",
		"bodyweight",
		"cable",
		"dumbbell",
		"kettlebell",
		"machine",
	}
}
