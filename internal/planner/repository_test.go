package planner

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"nutrisync/internal/database"
	"nutrisync/internal/nutrition"
	"nutrisync/internal/safety"
)

func TestRepository(t *testing.T) {
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db.SQL)
	ctx := context.Background()

	profile := testProfile()
	targets := nutrition.TargetsFor(profile.WeightKg, profile.HeightCm, profile.Age,
		profile.Gender, profile.Activity, profile.Goal, 0, 0)
	bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
	allowed, _ := ResolveProteins(profile.Proteins, profile.DietaryStyle, profile.Allergies)
	plan := FallbackPlan(profile, targets, allowed, nil, bl)

	const userID = int64(42)

	id, err := repo.Save(ctx, userID, profile.Goal, plan)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Save returned zero id")
	}
	if _, err := repo.Save(ctx, userID, profile.Goal, plan); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	t.Run("ListReturnsNewestFirst", func(t *testing.T) {
		plans, err := repo.ListRecentByUser(ctx, userID, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(plans) != 2 {
			t.Fatalf("Expected 2 plans, got %d", len(plans))
		}
		stored := plans[0]
		if stored.UserID != userID || stored.Goal != profile.Goal {
			t.Errorf("Unexpected row %+v", stored)
		}
		if stored.TargetCalories != targets.TargetCalories {
			t.Errorf("TargetCalories = %d, expected %d", stored.TargetCalories, targets.TargetCalories)
		}

		var days []DayPlan
		if err := json.Unmarshal(stored.PlanJSON, &days); err != nil {
			t.Fatalf("Stored plan JSON does not decode: %v", err)
		}
		if len(days) != 7 {
			t.Errorf("Stored plan has %d days", len(days))
		}
	})

	t.Run("LimitApplies", func(t *testing.T) {
		plans, err := repo.ListRecentByUser(ctx, userID, 1)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(plans) != 1 {
			t.Errorf("Expected 1 plan, got %d", len(plans))
		}
	})

	t.Run("OtherUserSeesNothing", func(t *testing.T) {
		plans, err := repo.ListRecentByUser(ctx, 99, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(plans) != 0 {
			t.Errorf("Expected no plans, got %d", len(plans))
		}
	})
}
