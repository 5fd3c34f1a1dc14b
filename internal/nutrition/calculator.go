// Package nutrition computes daily energy targets from a user profile.
// Every function here is pure and total: unrecognized gender, activity or
// goal strings resolve to documented defaults, and out-of-range numeric
// inputs propagate rather than error.
package nutrition

import (
	"math"
	"strings"
)

// Targets holds the derived daily energy numbers, all in kcal/day.
type Targets struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"target_calories"`
}

var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extra":     1.9,
}

const defaultActivityFactor = 1.55 // moderate

// BMR computes basal metabolic rate with the Mifflin-St Jeor formula.
// Gender matches "male"/"m" case-insensitively; any other value gets the
// female offset. That default is intentional, not an error.
func BMR(weightKg, heightCm float64, age int, gender string) int {
	offset := -161.0
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		offset = 5.0
	}
	return int(math.Round(10*weightKg + 6.25*heightCm - 5*float64(age) + offset))
}

// TDEE scales BMR by an activity factor. Unknown activity levels fall back
// to moderate.
func TDEE(bmr int, activity string) int {
	factor, ok := activityFactors[strings.ToLower(strings.TrimSpace(activity))]
	if !ok {
		factor = defaultActivityFactor
	}
	return int(math.Round(float64(bmr) * factor))
}

// TargetCalories adjusts TDEE for the stated goal. Goals are free text, so
// matching is by case-insensitive substring: "loss" subtracts 500, "gain" or
// "muscle" adds 300.
func TargetCalories(tdee int, goal string) int {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "loss"):
		return tdee - 500
	case strings.Contains(g, "gain"), strings.Contains(g, "muscle"):
		return tdee + 300
	}
	return tdee
}

// ActivityAdjustment reconciles the target with activity-tracker readings.
// Low step counts (<4000) scale the target by 0.9, high counts (>10000) by
// 1.1, and positive calories burned add back 30% of the burn. The two
// adjustments are independent and may both apply. Zero readings are treated
// as not provided.
func ActivityAdjustment(target, steps, caloriesBurned int) int {
	if steps > 0 {
		switch {
		case steps < 4000:
			target = int(math.Round(float64(target) * 0.9))
		case steps > 10000:
			target = int(math.Round(float64(target) * 1.1))
		}
	}
	if caloriesBurned > 0 {
		target += int(math.Round(float64(caloriesBurned) * 0.3))
	}
	return target
}

// TargetsFor derives all nutrition targets for a profile in one pass.
func TargetsFor(weightKg, heightCm float64, age int, gender, activity, goal string, steps, caloriesBurned int) Targets {
	b := BMR(weightKg, heightCm, age, gender)
	t := TDEE(b, activity)
	tc := ActivityAdjustment(TargetCalories(t, goal), steps, caloriesBurned)
	return Targets{BMR: b, TDEE: t, TargetCalories: tc}
}
