package workout

// Config consolidates the session defaults in one place instead of
// scattering magic numbers through the state machine.
type Config struct {
	// sets seeded when an exercise is added to the session
	DefaultSetsPerExercise int
	DefaultReps            int
	// rest timer duration emitted when a set is completed
	RestTimerSeconds int
	// assumed duration of one completed set, used for the calorie burn
	// estimate; a tunable default, not a verified physiological model
	MinutesPerSet float64
}

func DefaultConfig() Config {
	return Config{
		DefaultSetsPerExercise: 3,
		DefaultReps:            12,
		RestTimerSeconds:       60,
		MinutesPerSet:          2,
	}
}
