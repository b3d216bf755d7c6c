package nutrition

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	diary          *Diary
	metricsManager *metrics.Manager
}

func NewHandler(diary *Diary, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		diary:          diary,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	diaryRouter := mainRouter.PathPrefix("/diary/{userId}").Subrouter()
	diaryRouter.HandleFunc("/item", handler.HandleAddFood).Methods("POST", "OPTIONS").Name("add-diary-item")
	diaryRouter.HandleFunc("/item/{id}", handler.HandleRemoveItem).Methods("DELETE", "OPTIONS").Name("remove-diary-item")
	diaryRouter.HandleFunc("/day", handler.HandleDaySummary).Methods("GET", "OPTIONS").Name("day-summary")
}

type AddFoodRequest struct {
	FoodID        string  `json:"foodId"`
	MealType      string  `json:"mealType"`
	QuantityGrams float64 `json:"quantityGrams"`
	// Day in YYYY-MM-DD format; empty means today
	Day string `json:"day,omitempty"`
}

type RemoveItemResponse struct {
	DeletedID    int    `json:"deletedId"`
	Confirmation string `json:"confirmation"`
}

func (handler *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.addFood")
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

	var req AddFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}

	if req.FoodID == "" {
		http.Error(w, "error, food id empty", http.StatusBadRequest)
		return
	}

	mealType, err := ParseMealType(req.MealType)
	if err != nil {
		http.Error(w, "error, unknown meal type", http.StatusBadRequest)
		return
	}

	day, err := parseDay(req.Day)
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	result, err := handler.diary.AddFood(ctx, AddFoodParams{
		UserID:        userID,
		Day:           day,
		MealType:      mealType,
		FoodID:        req.FoodID,
		QuantityGrams: req.QuantityGrams,
	})
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		http.Error(w, "error, invalid quantity", http.StatusBadRequest)
		return
	case errors.Is(err, catalog.ErrFoodNotFound):
		http.Error(w, "food not found", http.StatusNotFound)
		return
	case errors.Is(err, catalog.ErrDataIntegrity):
		log.Errorf("add food [%s]: %s", req.FoodID, err)
		http.Error(w, "error, invalid catalog data", http.StatusUnprocessableEntity)
		return
	case err != nil:
		log.Errorf("failed to add food [%s] for user [%s]: %s", req.FoodID, userID, err)
		http.Error(w, "error, failed to add food", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterMealItemsAdded.Inc()

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal add food result: %s", err)
		http.Error(w, "error, failed to add food", http.StatusInternalServerError)
		return
	}

	log.Debugf("user [%s]: %s", userID, result.Confirmation)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.removeItem")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	idStr := vars["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	confirmation, err := handler.diary.RemoveItem(ctx, userID, id)
	if errors.Is(err, ErrDiaryItemNotFound) {
		http.Error(w, "diary item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to remove diary item %d for user [%s]: %s", id, userID, err)
		http.Error(w, "error, failed to remove diary item", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(RemoveItemResponse{
		DeletedID:    id,
		Confirmation: confirmation,
	})
	if err != nil {
		log.Errorf("failed to marshal remove item response: %s", err)
		http.Error(w, "error, failed to remove diary item", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleDaySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diary.daySummary")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	day, err := parseDay(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	// calorie target comes from the profile collaborator on the client
	// side; absent or invalid values fall back to the default
	calorieTarget := 0
	if targetParam := r.URL.Query().Get("target"); targetParam != "" {
		calorieTarget, err = strconv.Atoi(targetParam)
		if err != nil {
			http.Error(w, "error, invalid target", http.StatusBadRequest)
			return
		}
	}

	summary, err := handler.diary.DaySummary(ctx, userID, day, calorieTarget)
	if err != nil {
		log.Errorf("failed to get day summary for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to get day summary", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal day summary: %s", err)
		http.Error(w, "error, failed to get day summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func parseDay(day string) (time.Time, error) {
	if day == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	return time.Parse(time.DateOnly, day)
}
