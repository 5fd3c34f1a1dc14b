package planner

import "strings"

// proteinKey canonicalizes a user-selected protein name to a template key.
// Unknown proteins return "" and are covered by the vegetarian defaults.
func proteinKey(protein string) string {
	p := strings.ToLower(protein)
	switch {
	case strings.Contains(p, "chicken"):
		return "chicken"
	case strings.Contains(p, "fish"), strings.Contains(p, "seafood"), strings.Contains(p, "prawn"), strings.Contains(p, "shrimp"):
		return "fish"
	case strings.Contains(p, "egg"):
		return "eggs"
	case strings.Contains(p, "mutton"), strings.Contains(p, "lamb"):
		return "mutton"
	case strings.Contains(p, "paneer"):
		return "paneer"
	case strings.Contains(p, "tofu"), strings.Contains(p, "soy"):
		return "tofu"
	}
	return ""
}

// Lunch and dinner templates per protein, with an Indian and a global
// variant each (map key: indian flag).

var lunchByProtein = map[string]map[bool]mealTemplate{
	"chicken": {
		true: {
			Name:        "Chicken curry with brown rice",
			Ingredients: []string{"Chicken breast", "Brown rice", "Onion", "Tomato", "Spices"},
			Protein:     "35g", Carbs: "55g", Fats: "10g",
			Micros:    []string{"Protein", "Iron", "Zinc"},
			Why:       "High-protein balanced meal for midday",
			Purpose:   "Complete protein and complex carbs for sustained energy",
			Alignment: "Core meal driving %s with high satiety",
			Steps: []string{
				"Cook the brown rice and keep warm",
				"Saute onion until golden, add tomato and spices",
				"Add the chicken and sear on all sides",
				"Simmer covered until the chicken is cooked through",
				"Rest 2 minutes and serve over the rice",
			},
			Time: "35 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Grilled chicken rice bowl",
			Ingredients: []string{"Chicken breast", "Basmati rice", "Spinach", "Olive oil"},
			Protein:     "35g", Carbs: "52g", Fats: "11g",
			Micros:    []string{"Protein", "Iron", "Vitamin K"},
			Why:       "High-protein balanced meal for midday",
			Purpose:   "Complete protein and complex carbs for sustained energy",
			Alignment: "Core meal driving %s with high satiety",
			Steps: []string{
				"Cook the rice and keep warm",
				"Season the chicken with salt and pepper",
				"Grill the chicken 6 minutes per side",
				"Wilt the spinach in olive oil",
				"Slice the chicken and assemble the bowl",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
	},
	"fish": {
		true: {
			Name:        "Fish curry with rice",
			Ingredients: []string{"Fish fillet", "Rice", "Onion", "Tamarind", "Spices"},
			Protein:     "30g", Carbs: "50g", Fats: "9g",
			Micros:    []string{"Omega-3", "Iodine", "Vitamin D"},
			Why:       "Lean marine protein in a light gravy",
			Purpose:   "Omega-3 fats with complete protein",
			Alignment: "Core meal driving %s with high satiety",
			Steps: []string{
				"Cook the rice and keep warm",
				"Saute onion with the spices",
				"Add tamarind water and bring to a simmer",
				"Slide in the fish pieces gently",
				"Simmer 8 minutes without stirring and serve over rice",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Baked fish with quinoa",
			Ingredients: []string{"Fish fillet", "Quinoa", "Broccoli", "Lemon"},
			Protein:     "32g", Carbs: "40g", Fats: "10g",
			Micros:    []string{"Omega-3", "Vitamin C", "Selenium"},
			Why:       "Lean marine protein with a whole grain",
			Purpose:   "Omega-3 fats with complete protein",
			Alignment: "Core meal driving %s with high satiety",
			Steps: []string{
				"Heat the oven to 200C",
				"Season the fish and place on a tray",
				"Bake for 12-15 minutes",
				"Cook the quinoa and steam the broccoli meanwhile",
				"Plate together and finish with lemon",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
	},
	"eggs": {
		true: {
			Name:        "Egg curry with roti",
			Ingredients: []string{"Eggs", "Onion", "Tomato", "Wheat roti", "Spices"},
			Protein:     "20g", Carbs: "38g", Fats: "14g",
			Micros:    []string{"Vitamin B12", "Choline", "Iron"},
			Why:       "Affordable complete protein in a spiced gravy",
			Purpose:   "Complete amino acids with whole-wheat carbs",
			Alignment: "Core meal driving %s with high satiety",
			Steps: []string{
				"Hard boil the eggs and peel",
				"Saute onion, add tomato and spices",
				"Simmer into a thick gravy",
				"Halve the eggs and add to the gravy",
				"Warm the rotis and serve together",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Egg and greens grain bowl",
			Ingredients: []string{"Eggs", "Quinoa", "Spinach", "Olive oil"},
			Protein:     "20g", Carbs: "36g", Fats: "13g",
			Micros:    []string{"Vitamin B12", "Folate", "Choline"},
			Why:       "Affordable complete protein over a whole grain",
			Purpose:   "Complete amino acids with slow carbs",
			Alignment: "Core meal driving %s with high satiety",
			Steps: []string{
				"Cook the quinoa and keep warm",
				"Soft boil the eggs for 7 minutes",
				"Wilt the spinach in olive oil",
				"Assemble quinoa and spinach in a bowl",
				"Halve the eggs over the top and season",
			},
			Time: "25 mins", Difficulty: "Easy",
		},
	},
	"mutton": {
		true: {
			Name:        "Mutton curry with rice",
			Ingredients: []string{"Mutton", "Onion", "Ginger-garlic", "Rice", "Spices"},
			Protein:     "28g", Carbs: "48g", Fats: "16g",
			Micros:    []string{"Vitamin B12", "Iron", "Zinc"},
			Why:       "Iron-rich red meat for energy replenishment",
			Purpose:   "Heme iron and B12 with complex carbs",
			Alignment: "Nutrient-dense lunch anchoring %s",
			Steps: []string{
				"Brown the mutton pieces in oil",
				"Add onion and ginger-garlic, cook until soft",
				"Add the spices and a cup of water",
				"Pressure cook until the meat is tender",
				"Serve hot over steamed rice",
			},
			Time: "45 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Mutton and vegetable stew",
			Ingredients: []string{"Mutton", "Carrot", "Potato", "Onion", "Black pepper"},
			Protein:     "28g", Carbs: "38g", Fats: "15g",
			Micros:    []string{"Vitamin B12", "Iron", "Vitamin A"},
			Why:       "Iron-rich red meat in a one-pot stew",
			Purpose:   "Heme iron and B12 with root vegetables",
			Alignment: "Nutrient-dense lunch anchoring %s",
			Steps: []string{
				"Brown the mutton in a heavy pot",
				"Add onion and cook until translucent",
				"Add carrot, potato and water to cover",
				"Simmer covered until the meat is tender",
				"Season with black pepper and serve",
			},
			Time: "50 mins", Difficulty: "Medium",
		},
	},
	"paneer": {
		true: {
			Name:        "Paneer tikka with roti",
			Ingredients: []string{"Paneer", "Capsicum", "Onion", "Wheat roti", "Yogurt"},
			Protein:     "22g", Carbs: "40g", Fats: "15g",
			Micros:    []string{"Calcium", "Vitamin B12", "Phosphorus"},
			Why:       "Vegetarian protein with a grilled char",
			Purpose:   "Dairy protein and calcium with whole-wheat carbs",
			Alignment: "Vegetarian protein keeping %s on track",
			Steps: []string{
				"Cube the paneer and vegetables",
				"Marinate in spiced yogurt for 15 minutes",
				"Thread onto skewers",
				"Grill until lightly charred on all sides",
				"Serve hot with warm rotis",
			},
			Time: "35 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Paneer and vegetable wrap",
			Ingredients: []string{"Paneer", "Whole grain wrap", "Capsicum", "Onion", "Yogurt"},
			Protein:     "22g", Carbs: "42g", Fats: "14g",
			Micros:    []string{"Calcium", "Vitamin C"},
			Why:       "Vegetarian protein in a portable format",
			Purpose:   "Dairy protein and calcium with whole grains",
			Alignment: "Vegetarian protein keeping %s on track",
			Steps: []string{
				"Pan sear the paneer cubes",
				"Saute the capsicum and onion",
				"Warm the wrap on a dry pan",
				"Fill with paneer, vegetables and a yogurt drizzle",
				"Roll tightly, halve and serve",
			},
			Time: "20 mins", Difficulty: "Easy",
		},
	},
	"tofu": {
		true: {
			Name:        "Tofu bhurji with roti",
			Ingredients: []string{"Tofu", "Onion", "Tomato", "Wheat roti", "Turmeric"},
			Protein:     "18g", Carbs: "38g", Fats: "10g",
			Micros:    []string{"Iron", "Calcium", "Manganese"},
			Why:       "Plant protein scramble with Indian spices",
			Purpose:   "Soy protein with whole-wheat carbs",
			Alignment: "Plant-forward lunch supporting %s",
			Steps: []string{
				"Crumble the tofu by hand",
				"Saute onion until soft, add tomato and turmeric",
				"Fold in the tofu and cook 5 minutes",
				"Adjust salt and finish with coriander",
				"Serve hot with rotis",
			},
			Time: "20 mins", Difficulty: "Easy",
		},
		false: {
			Name:        "Stir-fried tofu with rice",
			Ingredients: []string{"Firm tofu", "Mixed vegetables", "Brown rice", "Soy sauce"},
			Protein:     "18g", Carbs: "46g", Fats: "10g",
			Micros:    []string{"Iron", "Calcium", "Magnesium"},
			Why:       "Plant protein with a quick stir-fry",
			Purpose:   "Soy protein with complex carbs",
			Alignment: "Plant-forward lunch supporting %s",
			Steps: []string{
				"Press and cube the tofu",
				"Cook the rice and keep warm",
				"Sear the tofu until golden",
				"Stir-fry the vegetables on high heat",
				"Toss everything with soy sauce and serve over rice",
			},
			Time: "25 mins", Difficulty: "Easy",
		},
	},
}

var vegLunches = map[bool][]mealTemplate{
	true: {
		{
			Name:        "Dal tadka with brown rice",
			Ingredients: []string{"Toor dal", "Brown rice", "Ghee", "Turmeric", "Cumin"},
			Protein:     "18g", Carbs: "55g", Fats: "8g",
			Micros:    []string{"Iron", "Folate", "Fiber"},
			Why:       "Classic legume and grain pairing",
			Purpose:   "Plant protein plus complex carbs for sustained energy",
			Alignment: "High-fiber, satisfying lunch for %s",
			Steps: []string{
				"Pressure cook the dal with turmeric",
				"Cook the rice separately",
				"Heat ghee and crackle the cumin",
				"Pour the tempering over the dal",
				"Serve the dal over rice",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
		{
			Name:        "Rajma chawal",
			Ingredients: []string{"Rajma", "Basmati rice", "Onion", "Tomato", "Spices"},
			Protein:     "16g", Carbs: "62g", Fats: "8g",
			Micros:    []string{"Iron", "Folate", "Fiber"},
			Why:       "Complete protein from the bean and rice combination",
			Purpose:   "Plant protein plus complex carbs for sustained energy",
			Alignment: "High-fiber, satisfying lunch for %s",
			Steps: []string{
				"Soak the rajma overnight and pressure cook",
				"Cook the rice",
				"Make a thick onion-tomato gravy with the spices",
				"Simmer the rajma in the gravy for 10 minutes",
				"Serve over the rice",
			},
			Time: "40 mins", Difficulty: "Medium",
		},
		{
			Name:        "Chole with rice",
			Ingredients: []string{"Chickpeas", "Rice", "Onion", "Tomato", "Spices"},
			Protein:     "15g", Carbs: "60g", Fats: "9g",
			Micros:    []string{"Folate", "Manganese", "Fiber"},
			Why:       "Hearty legume curry",
			Purpose:   "Plant protein plus complex carbs for sustained energy",
			Alignment: "High-fiber, satisfying lunch for %s",
			Steps: []string{
				"Soak and pressure cook the chickpeas",
				"Cook the rice",
				"Brown the onion, add tomato and spices",
				"Simmer the chickpeas in the masala",
				"Serve hot over the rice",
			},
			Time: "40 mins", Difficulty: "Medium",
		},
	},
	false: {
		{
			Name:        "Chickpea Buddha bowl",
			Ingredients: []string{"Chickpeas", "Quinoa", "Cucumber", "Olive oil"},
			Protein:     "16g", Carbs: "52g", Fats: "12g",
			Micros:    []string{"Folate", "Manganese", "Fiber"},
			Why:       "Assembled bowl with legume protein",
			Purpose:   "Plant protein plus complex carbs for sustained energy",
			Alignment: "High-fiber, satisfying lunch for %s",
			Steps: []string{
				"Cook the quinoa and let it cool slightly",
				"Rinse the chickpeas",
				"Dice the cucumber",
				"Arrange everything in a bowl",
				"Dress with olive oil and lemon",
			},
			Time: "20 mins", Difficulty: "Easy",
		},
		{
			Name:        "Quinoa veggie bowl",
			Ingredients: []string{"Quinoa", "Avocado", "Cherry tomatoes", "Spinach", "Lemon"},
			Protein:     "12g", Carbs: "48g", Fats: "14g",
			Micros:    []string{"Folate", "Vitamin K", "Magnesium"},
			Why:       "Complete amino acid profile from quinoa",
			Purpose:   "Plant protein plus complex carbs for sustained energy",
			Alignment: "High-fiber, satisfying lunch for %s",
			Steps: []string{
				"Cook the quinoa and fluff",
				"Halve the cherry tomatoes",
				"Slice the avocado",
				"Toss everything with the spinach",
				"Dress with lemon and serve",
			},
			Time: "20 mins", Difficulty: "Easy",
		},
		{
			Name:        "Lentil and vegetable bowl",
			Ingredients: []string{"Red lentils", "Rice", "Carrot", "Olive oil"},
			Protein:     "16g", Carbs: "54g", Fats: "9g",
			Micros:    []string{"Iron", "Folate", "Fiber"},
			Why:       "Quick-cooking legume with a grain base",
			Purpose:   "Plant protein plus complex carbs for sustained energy",
			Alignment: "High-fiber, satisfying lunch for %s",
			Steps: []string{
				"Simmer the lentils until soft",
				"Cook the rice",
				"Saute the carrot in olive oil",
				"Season the lentils",
				"Serve the lentils and carrot over rice",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
	},
}

var dinnerByProtein = map[string]map[bool]mealTemplate{
	"chicken": {
		true: {
			Name:        "Tandoori chicken with salad",
			Ingredients: []string{"Chicken", "Yogurt", "Cucumber", "Onion", "Spices"},
			Protein:     "34g", Carbs: "18g", Fats: "12g",
			Micros:    []string{"Protein", "Vitamin B6", "Selenium"},
			Why:       "Light, protein-rich dinner for recovery",
			Purpose:   "Lean protein supports overnight muscle repair",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Marinate the chicken in spiced yogurt for 30 minutes",
				"Heat the grill or oven to high",
				"Cook the chicken until charred and done",
				"Slice the cucumber and onion for the salad",
				"Rest the chicken briefly and serve over the salad",
			},
			Time: "40 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Grilled chicken with vegetables",
			Ingredients: []string{"Chicken breast", "Broccoli", "Carrot", "Olive oil"},
			Protein:     "34g", Carbs: "20g", Fats: "11g",
			Micros:    []string{"Protein", "Vitamin C", "Vitamin A"},
			Why:       "Light, protein-rich dinner for recovery",
			Purpose:   "Lean protein supports overnight muscle repair",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Season the chicken with herbs",
				"Grill 6-7 minutes per side",
				"Steam the broccoli and carrot",
				"Toss the vegetables in olive oil",
				"Rest the chicken and plate together",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
	},
	"fish": {
		true: {
			Name:        "Tawa fish with salad",
			Ingredients: []string{"Fish fillet", "Cucumber", "Onion", "Lemon", "Spices"},
			Protein:     "32g", Carbs: "14g", Fats: "12g",
			Micros:    []string{"Omega-3", "Vitamin D", "Iodine"},
			Why:       "Light, protein-rich dinner for recovery",
			Purpose:   "Omega-3 fats and protein before sleep",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Rub the fish with the spice mix",
				"Rest 10 minutes",
				"Sear on a hot tawa with minimal oil",
				"Flip once and cook through",
				"Serve with the cucumber-onion salad and lemon",
			},
			Time: "25 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Grilled fish with vegetables",
			Ingredients: []string{"Fish fillet", "Broccoli", "Olive oil", "Lemon"},
			Protein:     "32g", Carbs: "16g", Fats: "12g",
			Micros:    []string{"Omega-3", "Calcium", "Vitamin D"},
			Why:       "Light, protein-rich dinner for recovery",
			Purpose:   "Omega-3 fats and protein before sleep",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Marinate the fish with lemon and herbs",
				"Heat the grill pan",
				"Grill the fish with minimal oil",
				"Steam the broccoli separately",
				"Plate and serve hot",
			},
			Time: "25 mins", Difficulty: "Medium",
		},
	},
	"eggs": {
		true: {
			Name:        "Egg bhurji with roti",
			Ingredients: []string{"Eggs", "Onion", "Tomato", "Wheat roti"},
			Protein:     "19g", Carbs: "32g", Fats: "13g",
			Micros:    []string{"Vitamin B12", "Choline"},
			Why:       "Quick scramble for a light evening",
			Purpose:   "Complete protein without a heavy gravy",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Saute onion until soft",
				"Add tomato and cook down",
				"Beat the eggs and pour in",
				"Scramble on low until just set",
				"Serve with warm rotis",
			},
			Time: "15 mins", Difficulty: "Easy",
		},
		false: {
			Name:        "Vegetable omelette with salad",
			Ingredients: []string{"Eggs", "Capsicum", "Onion", "Lettuce"},
			Protein:     "19g", Carbs: "12g", Fats: "14g",
			Micros:    []string{"Vitamin B12", "Vitamin C"},
			Why:       "Quick egg dinner with raw greens",
			Purpose:   "Complete protein without heavy carbs",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Beat the eggs with seasoning",
				"Saute the capsicum and onion briefly",
				"Pour the eggs over the vegetables",
				"Fold once set",
				"Serve over crisp lettuce",
			},
			Time: "15 mins", Difficulty: "Easy",
		},
	},
	"mutton": {
		true: {
			Name:        "Mutton curry with roti",
			Ingredients: []string{"Mutton", "Onion", "Ginger-garlic", "Wheat roti"},
			Protein:     "28g", Carbs: "32g", Fats: "14g",
			Micros:    []string{"Vitamin B12", "Iron", "Calcium"},
			Why:       "Iron-rich dinner for energy replenishment",
			Purpose:   "Essential minerals for recovery and bone health",
			Alignment: "Nutrient-dense dinner closing the day's %s target",
			Steps: []string{
				"Brown the mutton in a pressure cooker",
				"Add onion and ginger-garlic paste",
				"Cook until the raw smell goes",
				"Pressure cook until tender",
				"Serve hot with rotis",
			},
			Time: "45 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Mutton and vegetable skillet",
			Ingredients: []string{"Mutton", "Capsicum", "Onion", "Black pepper"},
			Protein:     "28g", Carbs: "16g", Fats: "16g",
			Micros:    []string{"Vitamin B12", "Iron", "Zinc"},
			Why:       "Iron-rich dinner for energy replenishment",
			Purpose:   "Essential minerals for recovery and bone health",
			Alignment: "Nutrient-dense dinner closing the day's %s target",
			Steps: []string{
				"Slice the mutton thin",
				"Sear in a hot skillet",
				"Add the capsicum and onion",
				"Toss on high heat for 5 minutes",
				"Season with black pepper and serve",
			},
			Time: "30 mins", Difficulty: "Medium",
		},
	},
	"paneer": {
		true: {
			Name:        "Palak paneer with roti",
			Ingredients: []string{"Spinach", "Paneer", "Cream", "Wheat roti"},
			Protein:     "20g", Carbs: "30g", Fats: "15g",
			Micros:    []string{"Calcium", "Iron", "Vitamin A"},
			Why:       "Calcium and iron-rich vegetarian dinner",
			Purpose:   "Essential minerals for recovery and bone health",
			Alignment: "Nutrient-dense dinner closing the day's %s target",
			Steps: []string{
				"Blanch and puree the spinach",
				"Saute the puree with mild spices",
				"Add the paneer cubes",
				"Finish with a spoon of cream",
				"Serve hot with rotis",
			},
			Time: "35 mins", Difficulty: "Medium",
		},
		false: {
			Name:        "Paneer and pepper skillet",
			Ingredients: []string{"Paneer", "Capsicum", "Onion", "Olive oil"},
			Protein:     "20g", Carbs: "16g", Fats: "16g",
			Micros:    []string{"Calcium", "Vitamin C"},
			Why:       "Vegetarian protein with a quick sear",
			Purpose:   "Dairy protein without heavy carbs in the evening",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Cube the paneer",
				"Sear in olive oil until golden",
				"Add the capsicum and onion",
				"Toss on high heat briefly",
				"Season and serve hot",
			},
			Time: "20 mins", Difficulty: "Easy",
		},
	},
	"tofu": {
		true: {
			Name:        "Tofu curry with rice",
			Ingredients: []string{"Tofu", "Onion", "Tomato", "Rice", "Turmeric"},
			Protein:     "17g", Carbs: "42g", Fats: "10g",
			Micros:    []string{"Iron", "Calcium"},
			Why:       "Plant protein in a light curry",
			Purpose:   "Soy protein supports overnight recovery",
			Alignment: "Plant-forward dinner supporting %s",
			Steps: []string{
				"Cube and sear the tofu",
				"Make an onion-tomato base with turmeric",
				"Add the tofu to the gravy",
				"Simmer for 5 minutes",
				"Serve over steamed rice",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
		false: {
			Name:        "Baked tofu with greens",
			Ingredients: []string{"Firm tofu", "Spinach", "Olive oil", "Garlic"},
			Protein:     "17g", Carbs: "12g", Fats: "13g",
			Micros:    []string{"Iron", "Calcium", "Vitamin K"},
			Why:       "Plant protein with dark leafy greens",
			Purpose:   "Soy protein supports overnight recovery",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Press the tofu and cut into slabs",
				"Bake at 200C for 20 minutes",
				"Saute the garlic in olive oil",
				"Wilt the spinach in the garlic oil",
				"Serve the tofu over the greens",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
	},
}

var vegDinners = map[bool][]mealTemplate{
	true: {
		{
			Name:        "Mixed vegetable curry with roti",
			Ingredients: []string{"Cauliflower", "Carrot", "Green peas", "Wheat roti", "Spices"},
			Protein:     "10g", Carbs: "40g", Fats: "9g",
			Micros:    []string{"Vitamin A", "Vitamin C", "Fiber"},
			Why:       "Light vegetable dinner with whole-wheat carbs",
			Purpose:   "Vegetable fiber and micronutrients before sleep",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Chop all the vegetables evenly",
				"Saute the spices in a little oil",
				"Add the vegetables and a splash of water",
				"Cover and cook until just tender",
				"Serve hot with rotis",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
		{
			Name:        "Khichdi with vegetables",
			Ingredients: []string{"Rice", "Moong dal", "Carrot", "Ghee", "Turmeric"},
			Protein:     "14g", Carbs: "50g", Fats: "8g",
			Micros:    []string{"Iron", "Folate"},
			Why:       "Comforting one-pot legume and grain dinner",
			Purpose:   "Easily digestible protein and carbs in the evening",
			Alignment: "Nutrient-dense dinner closing the day's %s target",
			Steps: []string{
				"Rinse the rice and dal together",
				"Pressure cook with turmeric and diced carrot",
				"Mash lightly to a porridge consistency",
				"Heat ghee and pour over",
				"Season with salt and serve warm",
			},
			Time: "25 mins", Difficulty: "Easy",
		},
		{
			Name:        "Palak dal with rice",
			Ingredients: []string{"Toor dal", "Spinach", "Rice", "Cumin"},
			Protein:     "15g", Carbs: "48g", Fats: "6g",
			Micros:    []string{"Iron", "Folate", "Vitamin A"},
			Why:       "Legume dinner boosted with leafy greens",
			Purpose:   "Plant protein and iron before sleep",
			Alignment: "Nutrient-dense dinner closing the day's %s target",
			Steps: []string{
				"Pressure cook the dal until soft",
				"Chop and wilt the spinach into the dal",
				"Simmer together for 5 minutes",
				"Temper with cumin",
				"Serve over steamed rice",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
	},
	false: {
		{
			Name:        "Lentil soup with bread",
			Ingredients: []string{"Red lentils", "Carrot", "Bread", "Olive oil"},
			Protein:     "16g", Carbs: "44g", Fats: "9g",
			Micros:    []string{"Iron", "Folate", "Fiber"},
			Why:       "Warm legume soup for a light evening",
			Purpose:   "Plant protein and fiber before sleep",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Saute the carrot in olive oil",
				"Add the lentils and water",
				"Simmer until the lentils collapse",
				"Blend partially for texture",
				"Serve with toasted bread",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
		{
			Name:        "Roasted vegetable quinoa",
			Ingredients: []string{"Quinoa", "Zucchini", "Capsicum", "Olive oil"},
			Protein:     "12g", Carbs: "42g", Fats: "11g",
			Micros:    []string{"Magnesium", "Vitamin C", "Fiber"},
			Why:       "Whole grain dinner with roasted vegetables",
			Purpose:   "Complete plant protein from quinoa",
			Alignment: "Evening meal optimized for %s with lower carbs",
			Steps: []string{
				"Heat the oven to 200C",
				"Toss the vegetables in olive oil",
				"Roast for 20 minutes",
				"Cook the quinoa meanwhile",
				"Fold together and serve warm",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
		{
			Name:        "White bean and tomato stew",
			Ingredients: []string{"White beans", "Tomato", "Onion", "Olive oil"},
			Protein:     "15g", Carbs: "40g", Fats: "9g",
			Micros:    []string{"Iron", "Potassium", "Fiber"},
			Why:       "Hearty legume stew without meat",
			Purpose:   "Plant protein and potassium before sleep",
			Alignment: "Nutrient-dense dinner closing the day's %s target",
			Steps: []string{
				"Soften the onion in olive oil",
				"Add chopped tomato and cook down",
				"Stir in the beans with a cup of water",
				"Simmer 15 minutes",
				"Season well and serve hot",
			},
			Time: "30 mins", Difficulty: "Easy",
		},
	},
}
