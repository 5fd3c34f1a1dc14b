package planner

import (
	"fmt"
	"math"
	"strings"

	"nutrisync/internal/nutrition"
	"nutrisync/internal/safety"
)

// Calorie share of each meal slot. Breakfast, lunch and dinner carry the
// bulk of the day; the two snacks get 5% each.
var slotShares = map[string]float64{
	MealBreakfast:  0.25,
	MealMidMorning: 0.05,
	MealLunch:      0.35,
	MealEvening:    0.05,
	MealDinner:     0.30,
}

// FallbackPlan builds a complete 7-day plan from the internal template
// library. It never fails: every profile, including one whose blocklist
// excludes most templates, gets a full plan with safe ingredients.
func FallbackPlan(profile Profile, targets nutrition.Targets, allowed []string, warnings []string, bl safety.BlockList) *Plan {
	days := SynthesizeDays(targets.TargetCalories, profile, allowed, bl)
	return &Plan{
		BMR:            targets.BMR,
		TDEE:           targets.TDEE,
		TargetCalories: targets.TargetCalories,
		Days:           days,
		SafetyCheck: SafetyCheck{
			AllergyVerified:          true,
			MedicalConditionVerified: true,
			ConflictsFound:           false,
			Notes: fmt.Sprintf(
				"Plan synthesized from the internal template library and screened against %d blocklist terms.",
				len(bl)),
		},
		VoiceSummary: fmt.Sprintf(
			"Your smart %s plan is ready! Targeting %d calories per day with balanced nutrition.",
			strings.ToLower(profile.Goal), targets.TargetCalories),
		UsedAI:   false,
		Warnings: warnings,
	}
}

// SynthesizeDays produces the seven day plans. Meal names for breakfast,
// lunch and dinner never repeat within any 2-day window when enough safe
// templates exist for the profile.
func SynthesizeDays(targetCalories int, profile Profile, allowed []string, bl safety.BlockList) []DayPlan {
	indian := prefersIndian(profile.Cuisines)
	cycle := buildProteinCycle(allowed)
	note := allergiesNote(profile.Allergies)

	recent := make(map[string][]string, len(mealTypes))
	days := make([]DayPlan, 0, len(weekDays))

	for dayIdx, dayName := range weekDays {
		meals := make([]Meal, 0, len(mealTypes))
		total := 0
		for _, slot := range mealTypes {
			cal := int(math.Round(float64(targetCalories) * slotShares[slot]))
			candidates := candidatesFor(slot, dayIdx, indian, cycle)
			tmpl, ok := pickTemplate(candidates, recent[slot], bl)
			if !ok {
				tmpl = genericTemplate(slot)
			}
			meal := buildMeal(tmpl, slot, cal, profile.Goal, note, bl)
			meals = append(meals, meal)
			total += meal.Calories

			history := append(recent[slot], meal.Name)
			if len(history) > 2 {
				history = history[len(history)-2:]
			}
			recent[slot] = history
		}
		days = append(days, DayPlan{Day: dayName, TotalCalories: total, Meals: meals})
	}
	return days
}

func prefersIndian(cuisines []string) bool {
	if len(cuisines) == 0 {
		return true
	}
	for _, c := range cuisines {
		if strings.Contains(strings.ToLower(c), "indian") {
			return true
		}
	}
	return false
}

// buildProteinCycle turns the allowed proteins into an ordered cycle of
// template keys. Duplicates are dropped; proteins without a template key
// contribute nothing (the vegetarian defaults cover them).
func buildProteinCycle(allowed []string) []string {
	seen := make(map[string]struct{})
	var cycle []string
	for _, p := range allowed {
		key := proteinKey(p)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cycle = append(cycle, key)
	}
	return cycle
}

// candidatesFor assembles the ordered candidate list for one slot on one
// day. Rotation by day index drives the variety between days; pickTemplate
// walks the list in order.
func candidatesFor(slot string, day int, indian bool, cycle []string) []mealTemplate {
	switch slot {
	case MealBreakfast:
		base := globalBreakfasts
		if indian {
			base = indianBreakfasts
		}
		candidates := rotate(base, day)
		for _, key := range cycle {
			if key == "eggs" {
				candidates = append(candidates, eggBreakfasts[indian])
				break
			}
		}
		return candidates
	case MealMidMorning:
		if indian {
			return rotate(indianMidMorning, day)
		}
		return rotate(globalMidMorning, day)
	case MealEvening:
		if indian {
			return rotate(indianEvening, day)
		}
		return rotate(globalEvening, day)
	case MealLunch:
		return mainCandidates(lunchByProtein, vegLunches[indian], day, indian, cycle)
	case MealDinner:
		return mainCandidates(dinnerByProtein, vegDinners[indian], day, indian, cycle)
	}
	return nil
}

func mainCandidates(byProtein map[string]map[bool]mealTemplate, veg []mealTemplate, day int, indian bool, cycle []string) []mealTemplate {
	var candidates []mealTemplate
	for _, key := range rotateKeys(cycle, day) {
		if variants, ok := byProtein[key]; ok {
			candidates = append(candidates, variants[indian])
		}
	}
	return append(candidates, rotate(veg, day)...)
}

func rotate(templates []mealTemplate, by int) []mealTemplate {
	n := len(templates)
	if n == 0 {
		return nil
	}
	by %= n
	out := make([]mealTemplate, 0, n)
	out = append(out, templates[by:]...)
	return append(out, templates[:by]...)
}

func rotateKeys(keys []string, by int) []string {
	n := len(keys)
	if n == 0 {
		return nil
	}
	by %= n
	out := make([]string, 0, n)
	out = append(out, keys[by:]...)
	return append(out, keys[:by]...)
}

// pickTemplate selects the first candidate that is both fully safe and not
// used in the trailing 2-day window of this slot. Safety degrades gracefully:
// a name-safe template whose ingredients need filtering beats repetition, and
// repetition beats an unsafe name. The false return means no candidate has a
// safe name at all.
func pickTemplate(candidates []mealTemplate, recent []string, bl safety.BlockList) (mealTemplate, bool) {
	for _, t := range candidates {
		if !repeated(t.Name, recent) && templateSafe(t, bl) {
			return t, true
		}
	}
	for _, t := range candidates {
		if !repeated(t.Name, recent) && safety.IsSafe(t.Name, bl) {
			return t, true
		}
	}
	for _, t := range candidates {
		if safety.IsSafe(t.Name, bl) {
			return t, true
		}
	}
	return mealTemplate{}, false
}

func repeated(name string, recent []string) bool {
	for _, r := range recent {
		if r == name {
			return true
		}
	}
	return false
}

func templateSafe(t mealTemplate, bl safety.BlockList) bool {
	if !safety.IsSafe(t.Name, bl) {
		return false
	}
	for _, ing := range t.Ingredients {
		if !safety.IsSafe(ing, bl) {
			return false
		}
	}
	return true
}

// genericTemplate covers the degenerate case where the blocklist rules out
// every template name for a slot.
func genericTemplate(slot string) mealTemplate {
	return mealTemplate{
		Name:        "Simple " + strings.ToLower(slot) + " bowl",
		Ingredients: []string{"Brown rice", "Lentils", "Olive oil"},
		Protein:     "12g", Carbs: "45g", Fats: "8g",
		Micros:    []string{"Iron", "Fiber"},
		Why:       "Neutral staple meal compatible with the declared restrictions",
		Purpose:   "Balanced carbs and plant protein from pantry staples",
		Alignment: "Keeps the day on track for %s",
		Steps: []string{
			"Rinse the rice and lentils",
			"Simmer together until tender",
			"Season with salt",
			"Finish with olive oil",
			"Serve warm",
		},
		Time: "25 mins", Difficulty: "Easy",
	}
}

func buildMeal(tmpl mealTemplate, slot string, calories int, goal, allergyNote string, bl safety.BlockList) Meal {
	names := make([]string, 0, len(tmpl.Ingredients))
	for _, ing := range tmpl.Ingredients {
		if safety.IsSafe(ing, bl) {
			names = append(names, ing)
		}
	}
	if len(names) == 0 {
		for _, ing := range genericTemplate(slot).Ingredients {
			if safety.IsSafe(ing, bl) {
				names = append(names, ing)
			}
		}
	}
	if len(names) == 0 {
		names = []string{"Steamed rice"}
	}

	return Meal{
		Type:           slot,
		Name:           tmpl.Name,
		Calories:       calories,
		Ingredients:    estimateIngredients(names, calories),
		Macros:         Macros{Protein: tmpl.Protein, Carbohydrates: tmpl.Carbs, Fats: tmpl.Fats},
		Micronutrients: tmpl.Micros,
		Explainability: Explainability{
			WhySelected:         tmpl.Why,
			NutritionalPurpose:  tmpl.Purpose,
			GoalAlignment:       fmt.Sprintf(tmpl.Alignment, goal),
			AllergyConfirmation: allergyNote,
		},
		Recipe: Recipe{Steps: tmpl.Steps, CookingTime: tmpl.Time, Difficulty: tmpl.Difficulty},
	}
}

func allergiesNote(allergies []string) string {
	if len(allergies) == 0 {
		return "No allergies declared"
	}
	return fmt.Sprintf("Verified free of: %s", strings.Join(allergies, ", "))
}

// portionTable maps ingredient-name fragments to household portions with a
// rough calorie figure. Matched in order; the first hit wins.
var portionTable = []struct {
	match    string
	quantity string
	calories int
}{
	{"oil", "1 tbsp", 40},
	{"ghee", "1 tbsp", 45},
	{"buttermilk", "1 glass", 60},
	{"peanut", "2 tbsp", 100},
	{"butter", "1 tbsp", 50},
	{"chicken", "120g", 200},
	{"mutton", "100g", 210},
	{"fish", "120g", 180},
	{"paneer", "80g", 160},
	{"tofu", "100g", 120},
	{"egg", "2 pieces", 140},
	{"rice", "1 cup cooked", 180},
	{"quinoa", "3/4 cup cooked", 160},
	{"poha", "1 cup", 160},
	{"semolina", "1/2 cup", 150},
	{"idli", "3 pieces", 170},
	{"roti", "2 pieces", 160},
	{"bread", "2 slices", 150},
	{"wrap", "1 piece", 150},
	{"toast", "2 slices", 150},
	{"oats", "1/2 cup", 150},
	{"dal", "3/4 cup cooked", 140},
	{"lentil", "3/4 cup cooked", 140},
	{"rajma", "3/4 cup cooked", 140},
	{"chickpea", "3/4 cup cooked", 140},
	{"chole", "3/4 cup cooked", 140},
	{"bean", "3/4 cup cooked", 130},
	{"chana", "1/2 cup", 120},
	{"sprout", "1 cup", 80},
	{"yogurt", "1 cup", 100},
	{"curd", "1 cup", 100},
	{"milk", "1 cup", 100},
	{"cream", "1 tbsp", 50},
	{"almond", "20g", 120},
	{"walnut", "20g", 130},
	{"nut", "20g", 120},
	{"mustard seeds", "1/2 tsp", 5},
	{"seed", "1 tbsp", 60},
	{"avocado", "1/2 piece", 120},
	{"banana", "1 piece", 100},
	{"apple", "1 piece", 80},
	{"fruit", "1 cup", 80},
	{"hummus", "2 tbsp", 70},
	{"chutney", "2 tbsp", 40},
	{"sambar", "1 cup", 120},
	{"lemon", "1 wedge", 5},
	{"spice", "to taste", 5},
	{"turmeric", "1/2 tsp", 5},
	{"cumin", "1/2 tsp", 5},
	{"pepper", "to taste", 5},
	{"mustard", "1/2 tsp", 5},
	{"curry leaves", "a few", 5},
	{"coriander", "a handful", 5},
	{"mint", "a handful", 5},
	{"garlic", "2 cloves", 10},
	{"ginger", "1 tsp", 5},
}

// estimateIngredients assigns a household portion to each ingredient. The
// table figures act as weights: calories are scaled so they sum exactly to
// the meal's slot share.
func estimateIngredients(names []string, mealCalories int) []Ingredient {
	out := make([]Ingredient, 0, len(names))
	weights := make([]int, 0, len(names))
	totalWeight := 0
	for _, name := range names {
		quantity, w := lookupPortion(name)
		out = append(out, Ingredient{Name: name, Quantity: quantity})
		weights = append(weights, w)
		totalWeight += w
	}
	if totalWeight == 0 || len(out) == 0 {
		return out
	}

	assigned := 0
	largest := 0
	for i := range out {
		cal := mealCalories * weights[i] / totalWeight
		out[i].Calories = cal
		assigned += cal
		if weights[i] > weights[largest] {
			largest = i
		}
	}
	// Integer division leaves a small remainder; give it to the biggest item.
	out[largest].Calories += mealCalories - assigned
	return out
}

func lookupPortion(name string) (string, int) {
	n := strings.ToLower(name)
	for _, entry := range portionTable {
		if strings.Contains(n, entry.match) {
			return entry.quantity, entry.calories
		}
	}
	return "1 serving", 50
}
