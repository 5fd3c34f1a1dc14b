package planner

import "nutrisync/internal/safety"

// Violation identifies one blocklisted ingredient inside a candidate plan.
type Violation struct {
	Day        string `json:"day"`
	Meal       string `json:"meal"`
	Ingredient string `json:"ingredient"`
}

// ValidatePlan scans every ingredient of every meal against the blocklist.
// It is the sole gate between an externally generated plan and the caller:
// any violation discards the external plan entirely, there is no partial
// patching.
func ValidatePlan(days []DayPlan, bl safety.BlockList) (bool, []Violation) {
	var violations []Violation
	for _, day := range days {
		for _, meal := range day.Meals {
			for _, ing := range meal.Ingredients {
				if !safety.IsSafe(ing.Name, bl) {
					violations = append(violations, Violation{
						Day:        day.Day,
						Meal:       meal.Name,
						Ingredient: ing.Name,
					})
				}
			}
		}
	}
	return len(violations) == 0, violations
}
