package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/catalog"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrDiaryItemNotFound = errors.New("diary item not found")

// DiaryItem is the stored form of a logged food: a food reference and
// a quantity. Derived values are never persisted (totals are always
// recomputed from current items).
type DiaryItem struct {
	ID            int       `json:"id"`
	UserID        string    `json:"userId"`
	Day           time.Time `json:"day"`
	MealType      MealType  `json:"mealType"`
	FoodID        string    `json:"foodId"`
	QuantityGrams float64   `json:"quantityGrams"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, item DiaryItem) (_ *DiaryItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meal_item
				(user_id, day, meal_type, food_id, quantity_grams, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		item.UserID, item.Day, item.MealType, item.FoodID, item.QuantityGrams, item.CreatedAt,
	)
	if err != nil {
		// food_id has a FK on the food catalog table; a violation means
		// the referenced food vanished between validation and insert
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: %s", catalog.ErrFoodNotFound, item.FoodID)
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("diaryItem.id", id))

	item.ID = id
	return &item, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("diaryItem.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meal_item WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDiaryItemNotFound
	}

	return nil
}

func (r *Repo) ListDay(ctx context.Context, userID string, day time.Time) (_ []DiaryItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day.Format(time.DateOnly)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, day, meal_type, food_id, quantity_grams, created_at
			FROM meal_item
			WHERE user_id = $1 AND day = $2
			ORDER BY created_at, id;`,
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DiaryItem
	for rows.Next() {
		var item DiaryItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Day, &item.MealType,
			&item.FoodID, &item.QuantityGrams, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
