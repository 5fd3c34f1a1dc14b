package planner

import (
	"errors"
	"fmt"
	"math"

	"nutrisync/internal/nutrition"
	"nutrisync/internal/safety"
)

// ErrNoReplacementMeal is returned when every template for the requested
// slot is either excluded by the caller or blocked for the profile.
var ErrNoReplacementMeal = errors.New("no replacement meal available for this slot")

// RegenerateRequest asks for a single replacement meal inside an existing
// plan. ExcludeMeals lists meal names the caller has already seen and
// rejected, typically the current meal plus prior regenerations.
type RegenerateRequest struct {
	Profile      Profile  `json:"profile"`
	Day          string   `json:"day"`
	MealType     string   `json:"meal_type"`
	ExcludeMeals []string `json:"exclude_meals"`
}

// RegenerateMeal picks a replacement from the template library. It applies
// the same safety rules as full plan synthesis; the exclusion list stands in
// for the non-repetition window.
func RegenerateMeal(req RegenerateRequest) (Meal, error) {
	slot := req.MealType
	if !validSlot(slot) {
		return Meal{}, fmt.Errorf("unknown meal type %q", slot)
	}

	profile := req.Profile
	targets := nutrition.TargetsFor(
		profile.WeightKg, profile.HeightCm, profile.Age,
		profile.Gender, profile.Activity, profile.Goal,
		profile.StepsToday, profile.CaloriesBurned,
	)
	bl := safety.Compile(profile.Allergies, profile.DietaryStyle)
	allowed, _ := ResolveProteins(profile.Proteins, profile.DietaryStyle, profile.Allergies)

	indian := prefersIndian(profile.Cuisines)
	cycle := buildProteinCycle(allowed)
	candidates := candidatesFor(slot, dayIndex(req.Day), indian, cycle)

	excluded := make(map[string]struct{}, len(req.ExcludeMeals))
	for _, name := range req.ExcludeMeals {
		excluded[name] = struct{}{}
	}

	cal := int(math.Round(float64(targets.TargetCalories) * slotShares[slot]))
	note := allergiesNote(profile.Allergies)

	for _, t := range candidates {
		if _, skip := excluded[t.Name]; skip {
			continue
		}
		if templateSafe(t, bl) {
			return buildMeal(t, slot, cal, profile.Goal, note, bl), nil
		}
	}
	for _, t := range candidates {
		if _, skip := excluded[t.Name]; skip {
			continue
		}
		if safety.IsSafe(t.Name, bl) {
			return buildMeal(t, slot, cal, profile.Goal, note, bl), nil
		}
	}
	return Meal{}, ErrNoReplacementMeal
}

func validSlot(slot string) bool {
	for _, t := range mealTypes {
		if t == slot {
			return true
		}
	}
	return false
}

func dayIndex(day string) int {
	for i, d := range weekDays {
		if d == day {
			return i
		}
	}
	return 0
}
