package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListFoods(ctx context.Context) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name_en, name_ar, category, food_type,
				calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, fiber_per_100g,
				serving_size_g, serving_description, is_popular
			FROM food_item
			ORDER BY is_popular DESC, id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFoodRows(rows)
}

func (r *Repo) PopularFoods(ctx context.Context, limit int) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.popularFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name_en, name_ar, category, food_type,
				calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, fiber_per_100g,
				serving_size_g, serving_description, is_popular
			FROM food_item
			WHERE is_popular
			ORDER BY id
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFoodRows(rows)
}

func (r *Repo) GetFood(ctx context.Context, id string) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("food.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name_en, name_ar, category, food_type,
				calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, fiber_per_100g,
				serving_size_g, serving_description, is_popular
			FROM food_item
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods, err := scanFoodRows(rows)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, ErrFoodNotFound
	}

	return &foods[0], nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name_en, name_ar, muscle_group, secondary_muscles,
				equipment, difficulty, calories_per_minute, instructions_en, instructions_ar
			FROM exercise
			ORDER BY muscle_group, id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExerciseRows(rows)
}

func (r *Repo) GetExercise(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name_en, name_ar, muscle_group, secondary_muscles,
				equipment, difficulty, calories_per_minute, instructions_en, instructions_ar
			FROM exercise
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found, err := scanExerciseRows(rows)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrExerciseNotFound
	}

	return &found[0], nil
}

func scanFoodRows(rows pgx.Rows) ([]FoodItem, error) {
	var foods []FoodItem
	for rows.Next() {
		var f FoodItem
		if err := rows.Scan(
			&f.ID, &f.NameEn, &f.NameAr, &f.Category, &f.FoodType,
			&f.CaloriesPer100g, &f.ProteinPer100g, &f.CarbsPer100g, &f.FatPer100g, &f.FiberPer100g,
			&f.ServingSizeGrams, &f.ServingDescription, &f.IsPopular,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}

func scanExerciseRows(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		var secondaryMusclesJson []byte
		if err := rows.Scan(
			&e.ID, &e.NameEn, &e.NameAr, &e.MuscleGroup, &secondaryMusclesJson,
			&e.Equipment, &e.Difficulty, &e.CaloriesPerMinute, &e.InstructionsEn, &e.InstructionsAr,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(secondaryMusclesJson) > 0 {
			if err := json.Unmarshal(secondaryMusclesJson, &e.SecondaryMuscles); err != nil {
				return nil, fmt.Errorf("unmarshal secondary muscles: %w", err)
			}
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
