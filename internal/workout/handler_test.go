package workout_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/workout"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWorkoutHandler(t *testing.T) (*MockexerciseSource, *workout.Manager, *mux.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalogMock := NewMockexerciseSource(ctrl)
	manager := newTestManager()

	router := mux.NewRouter()
	handler := workout.NewHandler(manager, catalogMock, metrics.NewTestManager())
	handler.SetupRoutes(router)

	return catalogMock, manager, router
}

func addExerciseRequest(t *testing.T, exerciseID string) *http.Request {
	t.Helper()
	reqJson, err := json.Marshal(workout.AddExerciseRequest{ExerciseID: exerciseID})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/workout/user1/exercise", bytes.NewReader(reqJson))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_AddExercise(t *testing.T) {
	catalogMock, manager, router := setupWorkoutHandler(t)

	squat := testSquat()
	catalogMock.EXPECT().GetExercise(gomock.Any(), squat.ID).Return(&squat, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, addExerciseRequest(t, squat.ID))

	require.Equal(t, http.StatusCreated, rec.Code)

	var added workout.ActiveExercise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, squat.ID, added.Exercise.ID)
	require.Len(t, added.Sets, 3)
	assert.Equal(t, 12, added.Sets[0].Reps)

	assert.Equal(t, 1, manager.ActiveCount())
}

func TestHandler_AddExercise_NotFound(t *testing.T) {
	catalogMock, _, router := setupWorkoutHandler(t)

	catalogMock.EXPECT().
		GetExercise(gomock.Any(), "ghost").
		Return(nil, catalog.ErrExerciseNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, addExerciseRequest(t, "ghost"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AddExercise_BadRequests(t *testing.T) {
	_, _, router := setupWorkoutHandler(t)

	// missing content type
	req := httptest.NewRequest("POST", "/workout/user1/exercise", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// empty exercise id
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, addExerciseRequest(t, ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_AddSet(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)
	manager.AddExercise("user1", testSquat())

	req := httptest.NewRequest("POST", "/workout/user1/exercise/0/set", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var set workout.Set
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, 12, set.Reps)
	assert.Equal(t, 4, manager.Progress("user1").TotalSets)
}

func TestHandler_ToggleSet(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)
	manager.AddExercise("user1", testSquat())

	req := httptest.NewRequest("POST", "/workout/user1/exercise/0/set/0/toggle", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp workout.ToggleSetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.RestTimer)
	assert.Equal(t, 60, resp.RestTimer.Seconds)

	// toggle back: no rest timer
	req = httptest.NewRequest("POST", "/workout/user1/exercise/0/set/0/toggle", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp = workout.ToggleSetResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Completed)
	assert.Nil(t, resp.RestTimer)
}

func TestHandler_ToggleSet_Errors(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)

	// no session yet
	req := httptest.NewRequest("POST", "/workout/user1/exercise/0/set/0/toggle", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	manager.AddExercise("user1", testSquat())

	// set index out of range
	req = httptest.NewRequest("POST", "/workout/user1/exercise/0/set/9/toggle", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UpdateSet(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)
	manager.AddExercise("user1", testSquat())

	reqJson, err := json.Marshal(workout.UpdateSetRequest{Reps: 8, WeightKilos: 75.5})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/workout/user1/exercise/0/set/1", bytes.NewReader(reqJson))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var set workout.Set
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, 8, set.Reps)
	assert.Equal(t, 75.5, set.WeightKilos)
}

func TestHandler_UpdateSet_InvalidValues(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)
	manager.AddExercise("user1", testSquat())

	reqJson, err := json.Marshal(workout.UpdateSetRequest{Reps: -1, WeightKilos: 50})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/workout/user1/exercise/0/set/0", bytes.NewReader(reqJson))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Progress(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)

	// idle user: zero progress, not an error
	req := httptest.NewRequest("GET", "/workout/user1/progress", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var progress workout.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Zero(t, progress.TotalSets)

	manager.AddExercise("user1", testSquat())
	_, err := manager.ToggleSet("user1", 0, 0)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/workout/user1/progress", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Equal(t, 1, progress.CompletedSets)
	assert.Equal(t, 3, progress.TotalSets)
	assert.InDelta(t, 16, progress.EstimatedCaloriesBurned, 0.001)
}

func TestHandler_Discard(t *testing.T) {
	_, manager, router := setupWorkoutHandler(t)

	req := httptest.NewRequest("DELETE", "/workout/user1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	manager.AddExercise("user1", testSquat())

	req = httptest.NewRequest("DELETE", "/workout/user1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, manager.ActiveCount())
}
