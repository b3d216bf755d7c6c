package workout_test

import (
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSquat() catalog.Exercise {
	return catalog.Exercise{
		ID:                "squat",
		NameEn:            "Squat",
		MuscleGroup:       "quads",
		Equipment:         "barbell",
		CaloriesPerMinute: 8,
	}
}

func testPushUp() catalog.Exercise {
	return catalog.Exercise{
		ID:                "push-up",
		NameEn:            "Push Up",
		MuscleGroup:       "chest",
		Equipment:         "bodyweight",
		CaloriesPerMinute: 7,
	}
}

// testClock is a manually advanced clock for session tests.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{
		now: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
	}
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestSession(clock *testClock, onRestTimer workout.RestTimerFunc) *workout.Session {
	return workout.NewSession(workout.NewSessionParams{
		UserID:      "user1",
		Config:      workout.DefaultConfig(),
		Now:         clock.Now,
		OnRestTimer: onRestTimer,
	})
}

func TestSession_AddExercise_DefaultSets(t *testing.T) {
	session := newTestSession(newTestClock(), nil)

	added := session.AddExercise(testSquat())
	require.Len(t, added.Sets, 3)
	for _, set := range added.Sets {
		assert.Equal(t, 12, set.Reps)
		assert.Zero(t, set.WeightKilos)
		assert.False(t, set.Completed)
	}
}

func TestSession_FirstExerciseMarksStart(t *testing.T) {
	clock := newTestClock()
	session := newTestSession(clock, nil)

	// idle session: no start, no elapsed time
	progress := session.Progress()
	assert.Nil(t, progress.StartedAt)
	assert.Zero(t, progress.ElapsedMinutes)

	startTime := clock.Now()
	session.AddExercise(testSquat())

	clock.Advance(10 * time.Minute)
	session.AddExercise(testPushUp())

	// elapsed counts from the first added exercise
	clock.Advance(5 * time.Minute)
	progress = session.Progress()
	require.NotNil(t, progress.StartedAt)
	assert.Equal(t, startTime, *progress.StartedAt)
	assert.Equal(t, 15, progress.ElapsedMinutes)
}

func TestSession_AddSet_CarriesOverLastSet(t *testing.T) {
	session := newTestSession(newTestClock(), nil)
	session.AddExercise(testSquat())

	_, err := session.UpdateSet(0, 2, 8, 80)
	require.NoError(t, err)

	set, err := session.AddSet(0)
	require.NoError(t, err)
	assert.Equal(t, 8, set.Reps)
	assert.Equal(t, 80.0, set.WeightKilos)
	assert.False(t, set.Completed)

	_, err = session.AddSet(1)
	assert.ErrorIs(t, err, workout.ErrIndexOutOfRange)
}

func TestSession_ToggleSet_EmitsSingleRestTimer(t *testing.T) {
	clock := newTestClock()
	var triggers []workout.RestTimerTrigger
	session := newTestSession(clock, func(trigger workout.RestTimerTrigger) {
		triggers = append(triggers, trigger)
	})
	session.AddExercise(testSquat())

	trigger, err := session.ToggleSet(0, 1)
	require.NoError(t, err)
	require.NotNil(t, trigger)
	assert.Equal(t, 0, trigger.ExerciseIndex)
	assert.Equal(t, 1, trigger.SetIndex)
	assert.Equal(t, 60, trigger.Seconds)
	assert.Equal(t, clock.Now(), trigger.FiredAt)
	require.Len(t, triggers, 1)

	// un-completing emits nothing
	trigger, err = session.ToggleSet(0, 1)
	require.NoError(t, err)
	assert.Nil(t, trigger)
	assert.Len(t, triggers, 1)

	// completing again emits again
	trigger, err = session.ToggleSet(0, 1)
	require.NoError(t, err)
	require.NotNil(t, trigger)
	assert.Len(t, triggers, 2)
}

func TestSession_ToggleSet_IndexOutOfRange(t *testing.T) {
	session := newTestSession(newTestClock(), nil)
	session.AddExercise(testSquat())

	_, err := session.ToggleSet(1, 0)
	assert.ErrorIs(t, err, workout.ErrIndexOutOfRange)
	_, err = session.ToggleSet(0, 3)
	assert.ErrorIs(t, err, workout.ErrIndexOutOfRange)
	_, err = session.ToggleSet(-1, 0)
	assert.ErrorIs(t, err, workout.ErrIndexOutOfRange)
	_, err = session.ToggleSet(0, -1)
	assert.ErrorIs(t, err, workout.ErrIndexOutOfRange)
}

func TestSession_UpdateSet(t *testing.T) {
	session := newTestSession(newTestClock(), nil)
	session.AddExercise(testSquat())

	set, err := session.UpdateSet(0, 0, 10, 60.5)
	require.NoError(t, err)
	assert.Equal(t, 10, set.Reps)
	assert.Equal(t, 60.5, set.WeightKilos)

	// zero weight is valid (bodyweight), negatives are not
	_, err = session.UpdateSet(0, 0, 10, 0)
	require.NoError(t, err)

	_, err = session.UpdateSet(0, 0, -1, 60)
	assert.ErrorIs(t, err, workout.ErrInvalidSetValue)
	_, err = session.UpdateSet(0, 0, 10, -0.5)
	assert.ErrorIs(t, err, workout.ErrInvalidSetValue)
}

func TestSession_Progress(t *testing.T) {
	clock := newTestClock()
	session := newTestSession(clock, nil)

	// no sets at all: percent is 0, not NaN
	progress := session.Progress()
	assert.Zero(t, progress.Percent)
	assert.Zero(t, progress.TotalSets)
	assert.Zero(t, progress.EstimatedCaloriesBurned)

	session.AddExercise(testSquat())  // 8 kcal/min
	session.AddExercise(testPushUp()) // 7 kcal/min

	_, err := session.ToggleSet(0, 0)
	require.NoError(t, err)
	_, err = session.ToggleSet(0, 1)
	require.NoError(t, err)
	_, err = session.ToggleSet(1, 0)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	progress = session.Progress()

	assert.Equal(t, 3, progress.CompletedSets)
	assert.Equal(t, 6, progress.TotalSets)
	assert.InDelta(t, 50, progress.Percent, 0.001)
	assert.Equal(t, 20, progress.ElapsedMinutes)
	assert.Equal(t, 2, progress.Exercises)

	// 2 squat sets * 2 min * 8 + 1 push-up set * 2 min * 7
	assert.InDelta(t, 46, progress.EstimatedCaloriesBurned, 0.001)
}

func TestSession_Progress_RecomputedAfterUntoggle(t *testing.T) {
	session := newTestSession(newTestClock(), nil)
	session.AddExercise(testSquat())

	_, err := session.ToggleSet(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Progress().CompletedSets)

	_, err = session.ToggleSet(0, 0)
	require.NoError(t, err)

	progress := session.Progress()
	assert.Zero(t, progress.CompletedSets)
	assert.Zero(t, progress.EstimatedCaloriesBurned)
	assert.Zero(t, progress.Percent)
}
