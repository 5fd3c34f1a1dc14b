package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// StoredPlan is one persisted plan row. PlanJSON holds the serialized day
// list exactly as it was generated.
type StoredPlan struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Goal           string          `json:"goal"`
	BMR            int             `json:"bmr"`
	TDEE           int             `json:"tdee"`
	TargetCalories int             `json:"target_calories"`
	UsedAI         bool            `json:"used_ai"`
	PlanJSON       json.RawMessage `json:"plan"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Repository persists generated plans.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save stores a generated plan for a user and returns the new row id.
func (r *Repository) Save(ctx context.Context, userID int64, goal string, plan *Plan) (int64, error) {
	planJSON, err := json.Marshal(plan.Days)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize plan days: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO meal_plans (user_id, goal, bmr, tdee, target_calories, used_ai, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, goal, plan.BMR, plan.TDEE, plan.TargetCalories, plan.UsedAI, string(planJSON), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read plan id: %w", err)
	}
	return id, nil
}

// ListRecentByUser returns a user's plans, newest first.
func (r *Repository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]StoredPlan, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, goal, bmr, tdee, target_calories, used_ai, plan_json, created_at
		FROM meal_plans
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	var plans []StoredPlan
	for rows.Next() {
		var p StoredPlan
		var planJSON string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Goal, &p.BMR, &p.TDEE, &p.TargetCalories, &p.UsedAI, &planJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		p.PlanJSON = json.RawMessage(planJSON)
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plan rows: %w", err)
	}
	return plans, nil
}
