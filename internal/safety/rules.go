// Package safety compiles hard ingredient blocklists from declared
// allergies and dietary style, and checks ingredient names against them.
// Allergies are hard constraints: if a user lists an allergy, neither the
// allergen nor any derivative may ever appear in a plan.
package safety

import "sort"

// allergenDerivatives maps canonical allergy names to the ingredient and
// derivative terms that must be excluded when the allergy is declared.
// Terms are stored lowercase. Loaded once, never mutated.
var allergenDerivatives = map[string][]string{
	"Peanuts": {
		"peanut", "peanuts", "peanut butter", "peanut oil", "groundnut",
	},
	"Gluten": {
		"wheat", "barley", "rye", "bread", "toast", "roti", "chapati",
		"pasta", "noodles", "semolina", "seitan", "flour", "oats",
	},
	"Lactose": {
		"milk", "cheese", "paneer", "butter", "ghee", "cream", "yogurt",
		"curd", "whey", "buttermilk",
	},
	"Tree Nuts": {
		"almond", "almonds", "walnut", "walnuts", "cashew", "pistachio",
		"hazelnut", "pecan", "nut", "nuts",
	},
	"Egg Allergy": {
		"egg", "eggs", "omelette", "mayonnaise",
	},
	"Shellfish": {
		"shrimp", "prawn", "crab", "lobster", "oyster", "clam", "squid",
		"shellfish",
	},
	"Soy": {
		"soy", "soya", "tofu", "soy sauce", "edamame", "miso",
	},
	"Fish": {
		"fish", "salmon", "tuna", "sardine", "mackerel", "anchovy",
	},
}

// dietaryExclusions maps dietary styles to categorically excluded terms.
// Non-Vegetarian excludes nothing.
var dietaryExclusions = map[string][]string{
	"Vegetarian": {
		"chicken", "mutton", "beef", "pork", "lamb", "turkey", "bacon",
		"ham", "fish", "shrimp", "prawn", "crab", "seafood",
	},
	"Vegan": {
		"chicken", "mutton", "beef", "pork", "lamb", "turkey", "bacon",
		"ham", "fish", "shrimp", "prawn", "crab", "seafood",
		"egg", "eggs", "omelette",
		"milk", "cheese", "paneer", "butter", "ghee", "cream", "yogurt",
		"curd", "whey", "buttermilk", "honey",
	},
	"Pescatarian": {
		"chicken", "mutton", "beef", "pork", "lamb", "turkey", "bacon",
		"ham",
	},
	"Non-Vegetarian": {},
}

// allergenNames lists the allergen table keys in a fixed order so matching
// is deterministic.
var allergenNames = func() []string {
	names := make([]string, 0, len(allergenDerivatives))
	for name := range allergenDerivatives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// AllergenEntry pairs a canonical allergen name with its derivative terms.
type AllergenEntry struct {
	Name  string
	Terms []string
}
