package workout

import (
	"errors"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
)

var (
	ErrInvalidSetValue = errors.New("invalid set value")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoActiveSession = errors.New("no active session")
)

// Set is one planned or completed set of an exercise.
type Set struct {
	Reps        int     `json:"reps"`
	WeightKilos float64 `json:"weightKilos"`
	Completed   bool    `json:"completed"`
}

// ActiveExercise is an exercise added to the running session, together
// with its planned sets.
type ActiveExercise struct {
	Exercise catalog.Exercise `json:"exercise"`
	Sets     []Set            `json:"sets"`
}

// Progress holds the derived per-session numbers. All fields are
// recomputed on demand from the session state, never stored.
type Progress struct {
	CompletedSets int `json:"completedSets"`
	TotalSets     int `json:"totalSets"`
	// Percent of sets completed, 0 when the session has no sets
	Percent float64 `json:"percent"`
	// ElapsedMinutes since the first exercise was added, 0 while idle
	ElapsedMinutes          int        `json:"elapsedMinutes"`
	EstimatedCaloriesBurned float64    `json:"estimatedCaloriesBurned"`
	Exercises               int        `json:"exercises"`
	StartedAt               *time.Time `json:"startedAt,omitempty"`
}

// Session is the in-progress workout of a single user. It is a plain
// state machine with no locking of its own; the Manager serializes all
// mutations.
type Session struct {
	UserID    string           `json:"userId"`
	Exercises []ActiveExercise `json:"exercises"`
	StartedAt time.Time        `json:"startedAt"`

	config      Config
	now         func() time.Time
	onRestTimer RestTimerFunc
}

type NewSessionParams struct {
	UserID string
	Config Config
	// Now is the clock; nil means time.Now
	Now func() time.Time
	// OnRestTimer receives rest timer triggers; nil means triggers are
	// returned to the caller only
	OnRestTimer RestTimerFunc
}

func NewSession(params NewSessionParams) *Session {
	if params.Now == nil {
		params.Now = time.Now
	}
	return &Session{
		UserID:      params.UserID,
		config:      params.Config,
		now:         params.Now,
		onRestTimer: params.OnRestTimer,
	}
}

// AddExercise appends an exercise with the default planned sets. The
// first exercise added marks the session start (idle -> active), and
// the elapsed time counts from that moment.
func (s *Session) AddExercise(exercise catalog.Exercise) *ActiveExercise {
	if len(s.Exercises) == 0 {
		s.StartedAt = s.now()
	}

	sets := make([]Set, s.config.DefaultSetsPerExercise)
	for i := range sets {
		sets[i] = Set{
			Reps:        s.config.DefaultReps,
			WeightKilos: 0,
		}
	}

	s.Exercises = append(s.Exercises, ActiveExercise{
		Exercise: exercise,
		Sets:     sets,
	})

	return &s.Exercises[len(s.Exercises)-1]
}

// AddSet appends one more planned set to an exercise, carrying over the
// reps and weight of the exercise's last set.
func (s *Session) AddSet(exerciseIndex int) (*Set, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return nil, ErrIndexOutOfRange
	}

	exercise := &s.Exercises[exerciseIndex]
	newSet := Set{
		Reps: s.config.DefaultReps,
	}
	if len(exercise.Sets) > 0 {
		last := exercise.Sets[len(exercise.Sets)-1]
		newSet.Reps = last.Reps
		newSet.WeightKilos = last.WeightKilos
	}

	exercise.Sets = append(exercise.Sets, newSet)
	return &exercise.Sets[len(exercise.Sets)-1], nil
}

// ToggleSet flips the completed flag of a set. A transition to
// completed emits a single rest timer trigger; toggling back emits
// nothing, and the already running timer is not cancelled.
func (s *Session) ToggleSet(exerciseIndex, setIndex int) (*RestTimerTrigger, error) {
	set, err := s.set(exerciseIndex, setIndex)
	if err != nil {
		return nil, err
	}

	set.Completed = !set.Completed
	if !set.Completed {
		return nil, nil
	}

	trigger := RestTimerTrigger{
		ExerciseIndex: exerciseIndex,
		SetIndex:      setIndex,
		Seconds:       s.config.RestTimerSeconds,
		FiredAt:       s.now(),
	}
	if s.onRestTimer != nil {
		s.onRestTimer(trigger)
	}

	return &trigger, nil
}

// UpdateSet changes the reps and weight of a set. Negative values are
// rejected; zero is fine (bodyweight exercises have no load).
func (s *Session) UpdateSet(exerciseIndex, setIndex, reps int, weightKilos float64) (*Set, error) {
	if reps < 0 || weightKilos < 0 {
		return nil, ErrInvalidSetValue
	}

	set, err := s.set(exerciseIndex, setIndex)
	if err != nil {
		return nil, err
	}

	set.Reps = reps
	set.WeightKilos = weightKilos
	return set, nil
}

func (s *Session) set(exerciseIndex, setIndex int) (*Set, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.Exercises) {
		return nil, ErrIndexOutOfRange
	}
	exercise := &s.Exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(exercise.Sets) {
		return nil, ErrIndexOutOfRange
	}
	return &exercise.Sets[setIndex], nil
}

// Progress derives the dashboard numbers from the current state. The
// calorie estimate assumes each completed set took MinutesPerSet
// minutes of the exercise's per-minute burn rate.
func (s *Session) Progress() Progress {
	var progress Progress
	progress.Exercises = len(s.Exercises)

	for _, exercise := range s.Exercises {
		progress.TotalSets += len(exercise.Sets)
		for _, set := range exercise.Sets {
			if !set.Completed {
				continue
			}
			progress.CompletedSets++
			progress.EstimatedCaloriesBurned += s.config.MinutesPerSet * exercise.Exercise.CaloriesPerMinute
		}
	}

	if progress.TotalSets > 0 {
		progress.Percent = float64(progress.CompletedSets) / float64(progress.TotalSets) * 100
	}

	if len(s.Exercises) > 0 {
		startedAt := s.StartedAt
		progress.StartedAt = &startedAt
		progress.ElapsedMinutes = int(s.now().Sub(s.StartedAt).Minutes())
	}

	return progress
}
