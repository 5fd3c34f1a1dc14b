package nutrition

import "testing"

func TestBMR(t *testing.T) {
	cases := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		expected int
	}{
		{"Male", 70, 175, 30, "male", 1649}, // round(700 + 1093.75 - 150 + 5)
		{"MaleShortForm", 70, 175, 30, "M", 1649},
		{"Female", 60, 165, 25, "female", 1345}, // round(600 + 1031.25 - 125 - 161)
		{"UnknownGenderGetsFemaleOffset", 60, 165, 25, "other", 1345},
		{"EmptyGenderGetsFemaleOffset", 60, 165, 25, "", 1345},
		{"CaseInsensitive", 70, 175, 30, "MALE", 1649},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMR(tc.weight, tc.height, tc.age, tc.gender)
			if got != tc.expected {
				t.Errorf("BMR(%v, %v, %d, %q) = %d, want %d", tc.weight, tc.height, tc.age, tc.gender, got, tc.expected)
			}
		})
	}
}

func TestTDEE(t *testing.T) {
	cases := []struct {
		name     string
		bmr      int
		activity string
		expected int
	}{
		{"Moderate", 1724, "moderate", 2672}, // round(1724 * 1.55)
		{"Sedentary", 1724, "sedentary", 2069},
		{"Light", 1600, "light", 2200},
		{"Very", 1600, "very", 2760},
		{"Extra", 1600, "extra", 3040},
		{"UnknownDefaultsToModerate", 1724, "weekend warrior", 2672},
		{"EmptyDefaultsToModerate", 1724, "", 2672},
		{"CaseInsensitive", 1724, "Moderate", 2672},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TDEE(tc.bmr, tc.activity)
			if got != tc.expected {
				t.Errorf("TDEE(%d, %q) = %d, want %d", tc.bmr, tc.activity, got, tc.expected)
			}
		})
	}
}

func TestTargetCalories(t *testing.T) {
	cases := []struct {
		name     string
		tdee     int
		goal     string
		expected int
	}{
		{"WeightLoss", 2672, "Weight Loss", 2172},
		{"FatLossFreeText", 2672, "aggressive fat loss please", 2172},
		{"WeightGain", 2672, "Weight Gain", 2972},
		{"MuscleBuilding", 2672, "Build Muscle", 2972},
		{"Maintenance", 2672, "Maintain", 2672},
		{"EmptyGoal", 2672, "", 2672},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TargetCalories(tc.tdee, tc.goal)
			if got != tc.expected {
				t.Errorf("TargetCalories(%d, %q) = %d, want %d", tc.tdee, tc.goal, got, tc.expected)
			}
		})
	}
}

func TestActivityAdjustment(t *testing.T) {
	cases := []struct {
		name     string
		target   int
		steps    int
		burned   int
		expected int
	}{
		{"NoReadings", 2000, 0, 0, 2000},
		{"LowSteps", 2000, 3000, 0, 1800},
		{"HighSteps", 2000, 12000, 0, 2200},
		{"MidRangeSteps", 2000, 7000, 0, 2000},
		{"BoundaryLow", 2000, 4000, 0, 2000},
		{"BoundaryHigh", 2000, 10000, 0, 2000},
		{"CaloriesBurned", 2000, 0, 400, 2120},
		{"BothApply", 2000, 12000, 400, 2320},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ActivityAdjustment(tc.target, tc.steps, tc.burned)
			if got != tc.expected {
				t.Errorf("ActivityAdjustment(%d, %d, %d) = %d, want %d", tc.target, tc.steps, tc.burned, got, tc.expected)
			}
		})
	}
}

func TestTargetsFor(t *testing.T) {
	targets := TargetsFor(70, 175, 30, "male", "moderate", "Weight Loss", 0, 0)
	if targets.BMR != 1649 {
		t.Errorf("Expected BMR 1649, got %d", targets.BMR)
	}
	if targets.TDEE != 2556 { // round(1649 * 1.55)
		t.Errorf("Expected TDEE 2556, got %d", targets.TDEE)
	}
	if targets.TargetCalories != 2056 {
		t.Errorf("Expected target 2056, got %d", targets.TargetCalories)
	}
}
