// Package planner produces personalized 7-day, 5-meal-per-day nutrition
// plans. Plans may come from an external generative model, but every plan
// returned to a caller has been validated against the profile's compiled
// blocklist; on any external failure a deterministic synthesizer supplies
// the plan instead.
package planner

// Meal slot types. Every day carries exactly one meal of each.
const (
	MealBreakfast  = "Breakfast"
	MealMidMorning = "Mid-Morning"
	MealLunch      = "Lunch"
	MealEvening    = "Evening"
	MealDinner     = "Dinner"
)

var mealTypes = []string{MealBreakfast, MealMidMorning, MealLunch, MealEvening, MealDinner}

var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Profile is the immutable input of a plan request.
type Profile struct {
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	HeightCm          float64  `json:"height_cm"`
	WeightKg          float64  `json:"weight_kg"`
	Goal              string   `json:"goal"`
	Activity          string   `json:"activity"`
	MedicalConditions []string `json:"medical_conditions"`
	DietaryStyle      string   `json:"dietary_style"`
	Proteins          []string `json:"proteins"`
	Allergies         []string `json:"allergies"`
	Cuisines          []string `json:"cuisines"`
	Budget            string   `json:"budget"`
	StepsToday        int      `json:"steps_today,omitempty"`
	CaloriesBurned    int      `json:"calories_burned,omitempty"`
	ActiveMinutes     int      `json:"active_minutes,omitempty"`
}

// Ingredient is one line of a meal's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Calories int    `json:"calories"`
}

// Macros is the display-string macronutrient breakdown of a meal.
type Macros struct {
	Protein       string `json:"protein"`
	Carbohydrates string `json:"carbohydrates"`
	Fats          string `json:"fats"`
}

// Explainability is the per-meal reasoning block.
type Explainability struct {
	WhySelected         string `json:"why_selected"`
	NutritionalPurpose  string `json:"nutritional_purpose"`
	GoalAlignment       string `json:"goal_alignment"`
	AllergyConfirmation string `json:"allergy_confirmation"`
}

// Recipe carries the preparation instructions for a meal.
type Recipe struct {
	Steps       []string `json:"steps"`
	CookingTime string   `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
}

// Meal is one entry of a day's five meals.
type Meal struct {
	Type           string         `json:"type"`
	Name           string         `json:"name"`
	Calories       int            `json:"cal"`
	Ingredients    []Ingredient   `json:"ingredients"`
	Macros         Macros         `json:"macronutrients"`
	Micronutrients []string       `json:"micronutrients_highlight"`
	Explainability Explainability `json:"explainability"`
	Recipe         Recipe         `json:"recipe"`
}

// DayPlan is one day of the week with its five meals. TotalCalories is the
// literal sum of the meals' calories.
type DayPlan struct {
	Day           string `json:"day"`
	TotalCalories int    `json:"total_day_calories"`
	Meals         []Meal `json:"meals"`
}

// SafetyCheck summarizes the verification attached to a final plan. It
// always reflects the path actually taken, not the attempted one.
type SafetyCheck struct {
	AllergyVerified          bool   `json:"allergy_verified"`
	MedicalConditionVerified bool   `json:"medical_condition_verified"`
	ConflictsFound           bool   `json:"conflicts_found"`
	Notes                    string `json:"notes"`
}

// Plan is the complete 7-day result returned to the caller.
type Plan struct {
	BMR            int         `json:"bmr"`
	TDEE           int         `json:"tdee"`
	TargetCalories int         `json:"target_calories"`
	Days           []DayPlan   `json:"plan"`
	SafetyCheck    SafetyCheck `json:"safety_check"`
	VoiceSummary   string      `json:"voice_summary"`
	UsedAI         bool        `json:"used_ai"`
	Warnings       []string    `json:"warnings,omitempty"`
}
