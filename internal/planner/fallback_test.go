package planner

import (
	"math"
	"strings"
	"testing"

	"nutrisync/internal/nutrition"
	"nutrisync/internal/safety"
)

func testProfile() Profile {
	return Profile{
		Age:          30,
		Gender:       "male",
		HeightCm:     175,
		WeightKg:     70,
		Goal:         "Weight Loss",
		Activity:     "moderate",
		DietaryStyle: "Vegetarian",
		Proteins:     []string{"Paneer", "Tofu", "Eggs"},
		Cuisines:     []string{"Indian"},
	}
}

func TestSynthesizeDays(t *testing.T) {
	profile := testProfile()
	bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
	allowed, _ := ResolveProteins(profile.Proteins, profile.DietaryStyle, profile.Allergies)
	target := 2000

	days := SynthesizeDays(target, profile, allowed, bl)

	t.Run("SevenDaysFiveTypedMeals", func(t *testing.T) {
		if len(days) != 7 {
			t.Fatalf("Expected 7 days, got %d", len(days))
		}
		for i, day := range days {
			if day.Day != weekDays[i] {
				t.Errorf("Day %d named %q, expected %q", i, day.Day, weekDays[i])
			}
			if len(day.Meals) != 5 {
				t.Fatalf("Day %s has %d meals", day.Day, len(day.Meals))
			}
			for j, meal := range day.Meals {
				if meal.Type != mealTypes[j] {
					t.Errorf("Day %s meal %d has type %q, expected %q", day.Day, j, meal.Type, mealTypes[j])
				}
				if meal.Name == "" {
					t.Errorf("Day %s meal %d has no name", day.Day, j)
				}
			}
		}
	})

	t.Run("CalorieSplit", func(t *testing.T) {
		first := days[0]
		wantBreakfast := int(math.Round(float64(target) * 0.25))
		wantLunch := int(math.Round(float64(target) * 0.35))
		wantDinner := int(math.Round(float64(target) * 0.30))
		wantSnack := int(math.Round(float64(target) * 0.05))

		if first.Meals[0].Calories != wantBreakfast {
			t.Errorf("Breakfast calories = %d, expected %d", first.Meals[0].Calories, wantBreakfast)
		}
		if first.Meals[1].Calories != wantSnack {
			t.Errorf("Mid-morning calories = %d, expected %d", first.Meals[1].Calories, wantSnack)
		}
		if first.Meals[2].Calories != wantLunch {
			t.Errorf("Lunch calories = %d, expected %d", first.Meals[2].Calories, wantLunch)
		}
		if first.Meals[4].Calories != wantDinner {
			t.Errorf("Dinner calories = %d, expected %d", first.Meals[4].Calories, wantDinner)
		}
	})

	t.Run("DayTotalIsSumOfMeals", func(t *testing.T) {
		for _, day := range days {
			sum := 0
			for _, meal := range day.Meals {
				sum += meal.Calories
			}
			if day.TotalCalories != sum {
				t.Errorf("Day %s total %d, meals sum to %d", day.Day, day.TotalCalories, sum)
			}
		}
	})

	t.Run("NoRepeatWithinTwoDays", func(t *testing.T) {
		for _, slotIdx := range []int{0, 2, 4} {
			for i := range days {
				for back := 1; back <= 2; back++ {
					if i-back < 0 {
						continue
					}
					cur := days[i].Meals[slotIdx].Name
					prev := days[i-back].Meals[slotIdx].Name
					if cur == prev {
						t.Errorf("%s on %s repeats %s from %s",
							mealTypes[slotIdx], days[i].Day, cur, days[i-back].Day)
					}
				}
			}
		}
	})

	t.Run("RecipesHaveAtLeastFiveSteps", func(t *testing.T) {
		for _, day := range days {
			for _, meal := range day.Meals {
				if len(meal.Recipe.Steps) < 5 {
					t.Errorf("%s on %s has %d recipe steps", meal.Name, day.Day, len(meal.Recipe.Steps))
				}
			}
		}
	})

	t.Run("IngredientCaloriesSumToMeal", func(t *testing.T) {
		for _, day := range days {
			for _, meal := range day.Meals {
				sum := 0
				for _, ing := range meal.Ingredients {
					sum += ing.Calories
				}
				if sum != meal.Calories {
					t.Errorf("%s ingredients sum to %d, meal says %d", meal.Name, sum, meal.Calories)
				}
			}
		}
	})
}

func TestSynthesizeDaysHeavyRestrictions(t *testing.T) {
	profile := Profile{
		Age: 40, Gender: "female", HeightCm: 160, WeightKg: 60,
		Goal: "Maintenance", Activity: "light",
		DietaryStyle: "Vegan",
		Allergies:    []string{"Peanuts", "Tree Nuts", "Gluten", "Lactose", "Soy", "Shellfish", "Fish", "Egg Allergy"},
	}
	bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
	allowed, _ := ResolveProteins(profile.Proteins, profile.DietaryStyle, profile.Allergies)

	days := SynthesizeDays(1800, profile, allowed, bl)

	if len(days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(days))
	}
	ok, violations := ValidatePlan(days, bl)
	if !ok {
		t.Fatalf("Synthesized plan violates blocklist: %+v", violations)
	}
	for _, day := range days {
		for _, meal := range day.Meals {
			if len(meal.Ingredients) == 0 {
				t.Errorf("%s on %s has no ingredients", meal.Name, day.Day)
			}
		}
	}
}

func TestSynthesizeDaysNoProteins(t *testing.T) {
	profile := Profile{
		Age: 25, Gender: "male", HeightCm: 180, WeightKg: 75,
		Goal: "Muscle Gain", Activity: "very", DietaryStyle: "Vegan",
	}
	bl := safety.Compile(nil, "Vegan")
	days := SynthesizeDays(2500, profile, nil, bl)
	if len(days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(days))
	}
	for _, day := range days {
		if len(day.Meals) != 5 {
			t.Fatalf("Day %s has %d meals", day.Day, len(day.Meals))
		}
	}
}

func TestFallbackPlan(t *testing.T) {
	profile := testProfile()
	targets := nutrition.TargetsFor(profile.WeightKg, profile.HeightCm, profile.Age,
		profile.Gender, profile.Activity, profile.Goal, 0, 0)
	bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
	allowed, warnings := ResolveProteins(profile.Proteins, profile.DietaryStyle, profile.Allergies)

	plan := FallbackPlan(profile, targets, allowed, warnings, bl)

	if plan.UsedAI {
		t.Error("Fallback plan must not claim external generation")
	}
	if plan.BMR != targets.BMR || plan.TDEE != targets.TDEE || plan.TargetCalories != targets.TargetCalories {
		t.Errorf("Plan targets %d/%d/%d do not match computed %d/%d/%d",
			plan.BMR, plan.TDEE, plan.TargetCalories, targets.BMR, targets.TDEE, targets.TargetCalories)
	}
	if !plan.SafetyCheck.AllergyVerified || plan.SafetyCheck.ConflictsFound {
		t.Errorf("Unexpected safety check: %+v", plan.SafetyCheck)
	}
	if !strings.Contains(plan.VoiceSummary, "weight loss") {
		t.Errorf("Voice summary should mention the goal, got %q", plan.VoiceSummary)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(plan.Days))
	}
}
