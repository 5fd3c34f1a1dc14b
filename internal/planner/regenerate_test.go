package planner

import (
	"errors"
	"testing"

	"nutrisync/internal/safety"
)

func TestRegenerateMeal(t *testing.T) {
	profile := testProfile()

	t.Run("ReturnsDifferentSafeMeal", func(t *testing.T) {
		req := RegenerateRequest{
			Profile:      profile,
			Day:          "Wednesday",
			MealType:     MealLunch,
			ExcludeMeals: []string{"Paneer tikka with roti"},
		}
		meal, err := RegenerateMeal(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if meal.Type != MealLunch {
			t.Errorf("Expected lunch, got %q", meal.Type)
		}
		if meal.Name == "Paneer tikka with roti" {
			t.Error("Excluded meal was returned")
		}
		bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
		for _, ing := range meal.Ingredients {
			if !safety.IsSafe(ing.Name, bl) {
				t.Errorf("Unsafe ingredient %q in regenerated meal", ing.Name)
			}
		}
	})

	t.Run("ExhaustionReturnsSentinel", func(t *testing.T) {
		var exclude []string
		var seen []string
		for i := 0; i < 50; i++ {
			meal, err := RegenerateMeal(RegenerateRequest{
				Profile:      profile,
				Day:          "Monday",
				MealType:     MealDinner,
				ExcludeMeals: exclude,
			})
			if err != nil {
				if !errors.Is(err, ErrNoReplacementMeal) {
					t.Fatalf("Expected ErrNoReplacementMeal, got %v", err)
				}
				if len(seen) == 0 {
					t.Fatal("Exhausted before producing any meal")
				}
				return
			}
			for _, name := range seen {
				if name == meal.Name {
					t.Fatalf("Meal %q returned twice despite exclusion", meal.Name)
				}
			}
			seen = append(seen, meal.Name)
			exclude = append(exclude, meal.Name)
		}
		t.Fatal("Template pool never exhausted")
	})

	t.Run("AllergiesRespected", func(t *testing.T) {
		allergic := profile
		allergic.Allergies = []string{"Lactose"}
		bl := safety.Compile(allergic.Allergies, allergic.DietaryStyle)

		meal, err := RegenerateMeal(RegenerateRequest{
			Profile:  allergic,
			Day:      "Friday",
			MealType: MealBreakfast,
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for _, ing := range meal.Ingredients {
			if !safety.IsSafe(ing.Name, bl) {
				t.Errorf("Unsafe ingredient %q", ing.Name)
			}
		}
	})

	t.Run("UnknownMealType", func(t *testing.T) {
		_, err := RegenerateMeal(RegenerateRequest{Profile: profile, MealType: "Brunch"})
		if err == nil {
			t.Fatal("Expected an error for an unknown meal type")
		}
	})
}
