package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListFoods(ctx context.Context) ([]FoodItem, error)
	PopularFoods(ctx context.Context, limit int) ([]FoodItem, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
}

const defaultPopularFoodsLimit = 12

type FoodsResponse struct {
	Foods []FoodItem `json:"foods"`
	Total int        `json:"total"`
}

type ExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	searchAllowedPerMin int,
) {
	catalogRouter := mainRouter.PathPrefix("/catalog").Subrouter()
	catalogRouter.HandleFunc("/foods", handler.HandleFoods).Methods("GET", "OPTIONS").Name("list-foods")
	catalogRouter.HandleFunc("/foods/popular", handler.HandlePopularFoods).Methods("GET", "OPTIONS").Name("popular-foods")
	catalogRouter.HandleFunc("/foods/categories", handler.HandleFoodCategories).Methods("GET", "OPTIONS").Name("food-categories")
	catalogRouter.HandleFunc("/exercises", handler.HandleExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	catalogRouter.HandleFunc("/exercises/musclegroups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("muscle-groups")
	catalogRouter.HandleFunc("/exercises/equipment", handler.HandleEquipmentTypes).Methods("GET", "OPTIONS").Name("equipment-types")

	// the search endpoints are the public, abuse-prone surface
	catalogRouter.Use(middleware.RateLimit(rateLimiter, "catalog", searchAllowedPerMin, metricsManager))
}

func (handler *Handler) HandleFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.foods")
	defer span.End()

	foods, err := handler.repo.ListFoods(ctx)
	if err != nil {
		log.Errorf("failed to list foods: %s", err)
		http.Error(w, "failed to list foods", http.StatusInternalServerError)
		return
	}

	filtered := FilterFoods(foods, FoodFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	})

	writeJson(w, FoodsResponse{
		Foods: filtered,
		Total: len(filtered),
	})
}

func (handler *Handler) HandlePopularFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.popularFoods")
	defer span.End()

	limit := defaultPopularFoodsLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsedLimit, err := strconv.Atoi(limitParam)
		if err != nil || parsedLimit <= 0 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	foods, err := handler.repo.PopularFoods(ctx, limit)
	if err != nil {
		log.Errorf("failed to list popular foods: %s", err)
		http.Error(w, "failed to list popular foods", http.StatusInternalServerError)
		return
	}

	writeJson(w, FoodsResponse{
		Foods: foods,
		Total: len(foods),
	})
}

func (handler *Handler) HandleFoodCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.foodCategories")
	defer span.End()

	writeJson(w, FoodCategories())
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.exercises")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	filtered := FilterExercises(exercises, ExerciseFilter{
		MuscleGroup: r.URL.Query().Get("muscle"),
		Equipment:   r.URL.Query().Get("equipment"),
		Search:      r.URL.Query().Get("q"),
	})

	writeJson(w, ExercisesResponse{
		Exercises: filtered,
		Total:     len(filtered),
	})
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.muscleGroups")
	defer span.End()

	writeJson(w, MuscleGroups())
}

func (handler *Handler) HandleEquipmentTypes(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.equipmentTypes")
	defer span.End()

	writeJson(w, EquipmentTypes())
}

func writeJson(w http.ResponseWriter, response interface{}) {
	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(responseJson))
}
