package workout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workout_mocks_test.go -package=workout_test

type exerciseSource interface {
	GetExercise(ctx context.Context, id string) (*catalog.Exercise, error)
}

type Handler struct {
	manager        *Manager
	catalog        exerciseSource
	metricsManager *metrics.Manager
}

func NewHandler(manager *Manager, catalog exerciseSource, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		manager:        manager,
		catalog:        catalog,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	workoutRouter := mainRouter.PathPrefix("/workout/{userId}").Subrouter()
	workoutRouter.HandleFunc("/exercise", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("workout-add-exercise")
	workoutRouter.HandleFunc("/exercise/{exIdx}/set", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("workout-add-set")
	workoutRouter.HandleFunc("/exercise/{exIdx}/set/{setIdx}/toggle", handler.HandleToggleSet).Methods("POST", "OPTIONS").Name("workout-toggle-set")
	workoutRouter.HandleFunc("/exercise/{exIdx}/set/{setIdx}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("workout-update-set")
	workoutRouter.HandleFunc("/progress", handler.HandleProgress).Methods("GET", "OPTIONS").Name("workout-progress")
	workoutRouter.HandleFunc("", handler.HandleDiscard).Methods("DELETE", "OPTIONS").Name("workout-discard")
}

type AddExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
}

type ToggleSetResponse struct {
	Completed bool              `json:"completed"`
	RestTimer *RestTimerTrigger `json:"restTimer,omitempty"`
}

type UpdateSetRequest struct {
	Reps        int     `json:"reps"`
	WeightKilos float64 `json:"weightKilos"`
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if req.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	exercise, err := handler.catalog.GetExercise(ctx, req.ExerciseID)
	if errors.Is(err, catalog.ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get exercise [%s]: %s", req.ExerciseID, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	added := handler.manager.AddExercise(userID, *exercise)
	handler.metricsManager.GaugeActiveWorkouts.Set(float64(handler.manager.ActiveCount()))

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal added exercise: %s", err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("user [%s]: added exercise [%s] to workout", userID, exercise.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.addSet")
	defer span.End()

	userID, exerciseIndex, _, ok := workoutVars(w, r, false)
	if !ok {
		return
	}

	set, err := handler.manager.AddSet(userID, exerciseIndex)
	if handleSessionErr(w, err) {
		return
	}

	writeJson(w, set, http.StatusCreated)
}

func (handler *Handler) HandleToggleSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.toggleSet")
	defer span.End()

	userID, exerciseIndex, setIndex, ok := workoutVars(w, r, true)
	if !ok {
		return
	}

	trigger, err := handler.manager.ToggleSet(userID, exerciseIndex, setIndex)
	if handleSessionErr(w, err) {
		return
	}

	response := ToggleSetResponse{
		Completed: trigger != nil,
		RestTimer: trigger,
	}
	if trigger != nil {
		handler.metricsManager.CounterSetsCompleted.Inc()
		handler.metricsManager.CounterRestTimerTriggers.Inc()
	}

	writeJson(w, response, http.StatusOK)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.updateSet")
	defer span.End()

	userID, exerciseIndex, setIndex, ok := workoutVars(w, r, true)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	set, err := handler.manager.UpdateSet(userID, exerciseIndex, setIndex, req.Reps, req.WeightKilos)
	if errors.Is(err, ErrInvalidSetValue) {
		http.Error(w, "error, invalid set value", http.StatusBadRequest)
		return
	}
	if handleSessionErr(w, err) {
		return
	}

	writeJson(w, set, http.StatusOK)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.progress")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	writeJson(w, handler.manager.Progress(userID), http.StatusOK)
}

func (handler *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.discard")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	if !handler.manager.Discard(userID) {
		http.Error(w, "no active workout", http.StatusNotFound)
		return
	}
	handler.metricsManager.GaugeActiveWorkouts.Set(float64(handler.manager.ActiveCount()))

	log.Debugf("user [%s]: workout discarded", userID)
	pkg.WriteTextResponseOK(w, "workout discarded")
}

// workoutVars extracts and validates the path variables shared by the
// set endpoints.
func workoutVars(w http.ResponseWriter, r *http.Request, needSetIndex bool) (userID string, exerciseIndex, setIndex int, ok bool) {
	vars := mux.Vars(r)
	userID = vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return "", 0, 0, false
	}

	exerciseIndex, err := strconv.Atoi(vars["exIdx"])
	if err != nil {
		http.Error(w, "error, exercise index NaN", http.StatusBadRequest)
		return "", 0, 0, false
	}

	if needSetIndex {
		setIndex, err = strconv.Atoi(vars["setIdx"])
		if err != nil {
			http.Error(w, "error, set index NaN", http.StatusBadRequest)
			return "", 0, 0, false
		}
	}

	return userID, exerciseIndex, setIndex, true
}

// handleSessionErr writes the response for the session errors common
// to all mutation endpoints and reports whether it did.
func handleSessionErr(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrNoActiveSession):
		http.Error(w, "no active workout", http.StatusNotFound)
		return true
	case errors.Is(err, ErrIndexOutOfRange):
		http.Error(w, "error, index out of range", http.StatusNotFound)
		return true
	case err != nil:
		log.Errorf("workout session error: %s", err)
		http.Error(w, "workout session error", http.StatusInternalServerError)
		return true
	}
	return false
}

func writeJson(w http.ResponseWriter, response interface{}, statusCode int) {
	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponse(w, pkg.ContentType.JSON, string(responseJson), statusCode)
}
