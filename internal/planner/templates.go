package planner

// mealTemplate is one named meal the synthesizer can emit. Alignment is a
// format string whose single %s receives the user's goal. Loaded once at
// process start, never mutated.
type mealTemplate struct {
	Name        string
	Ingredients []string
	Protein     string
	Carbs       string
	Fats        string
	Micros      []string
	Why         string
	Purpose     string
	Alignment   string
	Steps       []string
	Time        string
	Difficulty  string
}

var indianBreakfasts = []mealTemplate{
	{
		Name:        "Poha with peanuts & vegetables",
		Ingredients: []string{"Poha", "Peanuts", "Onion", "Green chilli", "Lemon"},
		Protein:     "8g", Carbs: "45g", Fats: "6g",
		Micros:    []string{"Iron", "Vitamin B6"},
		Why:       "Light, easily digestible morning meal",
		Purpose:   "Provides complex carbs and plant protein for morning energy",
		Alignment: "Supports %s with controlled calorie density",
		Steps: []string{
			"Rinse and soak poha for 5 minutes, then drain",
			"Heat oil and add mustard seeds until they pop",
			"Add onion and green chilli, saute until soft",
			"Add the soaked poha and peanuts, mix well",
			"Finish with lemon juice and chopped coriander",
		},
		Time: "15 mins", Difficulty: "Easy",
	},
	{
		Name:        "Idli with sambar",
		Ingredients: []string{"Idli", "Sambar", "Coconut chutney"},
		Protein:     "10g", Carbs: "42g", Fats: "5g",
		Micros:    []string{"Folate", "Probiotics"},
		Why:       "Fermented food rich in probiotics",
		Purpose:   "Steamed and low-fat, with gut health support from fermentation",
		Alignment: "Light, filling start aligned with %s",
		Steps: []string{
			"Steam the idlis for 10 minutes until cooked through",
			"Heat the sambar with a pinch of mustard-seed tempering",
			"Warm the chutney to room temperature",
			"Plate three idlis per serving",
			"Serve with sambar poured over and chutney on the side",
		},
		Time: "20 mins", Difficulty: "Easy",
	},
	{
		Name:        "Vegetable upma",
		Ingredients: []string{"Semolina", "Carrot", "Green peas", "Mustard seeds", "Curry leaves"},
		Protein:     "7g", Carbs: "40g", Fats: "7g",
		Micros:    []string{"Iron", "Vitamin A"},
		Why:       "Warm savory breakfast with hidden vegetables",
		Purpose:   "Complex carbs plus vegetable fiber for steady glucose release",
		Alignment: "Keeps morning calories in check for %s",
		Steps: []string{
			"Dry roast the semolina until lightly golden, set aside",
			"Temper mustard seeds and curry leaves in hot oil",
			"Add chopped carrot and peas, cook for 3 minutes",
			"Pour in hot water and stream in the semolina while stirring",
			"Cover and steam for 2 minutes, fluff and serve",
		},
		Time: "20 mins", Difficulty: "Easy",
	},
	{
		Name:        "Besan chilla with mint chutney",
		Ingredients: []string{"Gram flour", "Onion", "Tomato", "Coriander", "Mint chutney"},
		Protein:     "12g", Carbs: "30g", Fats: "8g",
		Micros:    []string{"Folate", "Magnesium"},
		Why:       "Savory high-protein pancake from legume flour",
		Purpose:   "Legume protein with a low glycemic load",
		Alignment: "Protein-forward start supporting %s",
		Steps: []string{
			"Whisk gram flour with water into a smooth batter",
			"Fold in chopped onion, tomato and coriander",
			"Heat a lightly oiled pan over medium flame",
			"Pour a ladle of batter and spread into a thin round",
			"Cook both sides until golden and serve with chutney",
		},
		Time: "15 mins", Difficulty: "Easy",
	},
}

var globalBreakfasts = []mealTemplate{
	{
		Name:        "Oats with banana & nuts",
		Ingredients: []string{"Rolled oats", "Banana", "Almonds", "Honey"},
		Protein:     "10g", Carbs: "48g", Fats: "9g",
		Micros:    []string{"Fiber", "Potassium", "Vitamin E"},
		Why:       "High-fiber, sustained energy breakfast",
		Purpose:   "Beta-glucan fiber and slow carbs prevent a mid-morning crash",
		Alignment: "Supports %s with controlled calorie density",
		Steps: []string{
			"Soak the oats in milk or water overnight",
			"Stir once and check the consistency in the morning",
			"Slice the banana over the oats",
			"Scatter the almonds on top",
			"Drizzle with honey and serve cold",
		},
		Time: "10 mins", Difficulty: "Easy",
	},
	{
		Name:        "Greek yogurt parfait",
		Ingredients: []string{"Greek yogurt", "Granola", "Mixed berries", "Honey"},
		Protein:     "16g", Carbs: "38g", Fats: "6g",
		Micros:    []string{"Calcium", "Vitamin C", "Probiotics"},
		Why:       "Protein-dense breakfast with live cultures",
		Purpose:   "Casein protein keeps satiety high through the morning",
		Alignment: "Protein-forward start supporting %s",
		Steps: []string{
			"Spoon a layer of yogurt into a glass",
			"Add a layer of granola",
			"Add a layer of berries",
			"Repeat the layers once more",
			"Finish with a drizzle of honey",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
	{
		Name:        "Avocado toast with seeds",
		Ingredients: []string{"Whole grain bread", "Avocado", "Pumpkin seeds", "Lemon"},
		Protein:     "9g", Carbs: "32g", Fats: "15g",
		Micros:    []string{"Folate", "Vitamin K", "Magnesium"},
		Why:       "Healthy monounsaturated fats with whole grains",
		Purpose:   "Unsaturated fats and fiber for long-lasting satiety",
		Alignment: "Keeps morning calories in check for %s",
		Steps: []string{
			"Toast the bread until crisp",
			"Halve and pit the avocado",
			"Mash the avocado with lemon juice and a pinch of salt",
			"Spread the mash over the toast",
			"Top with pumpkin seeds and serve",
		},
		Time: "10 mins", Difficulty: "Easy",
	},
	{
		Name:        "Banana smoothie bowl",
		Ingredients: []string{"Banana", "Milk", "Chia seeds", "Mixed berries"},
		Protein:     "9g", Carbs: "44g", Fats: "7g",
		Micros:    []string{"Potassium", "Omega-3", "Vitamin C"},
		Why:       "Quick blended breakfast with fruit fiber",
		Purpose:   "Fast carbs balanced with chia fats and protein",
		Alignment: "Light, filling start aligned with %s",
		Steps: []string{
			"Freeze the banana in chunks ahead of time",
			"Blend the banana with milk until thick",
			"Pour into a bowl",
			"Top with berries and chia seeds",
			"Rest 2 minutes so the chia swells, then serve",
		},
		Time: "10 mins", Difficulty: "Easy",
	},
}

// eggBreakfasts are appended to the candidate list only when eggs survive
// protein resolution.
var eggBreakfasts = map[bool]mealTemplate{
	true: {
		Name:        "Masala omelette with toast",
		Ingredients: []string{"Eggs", "Onion", "Tomato", "Whole wheat toast"},
		Protein:     "18g", Carbs: "28g", Fats: "11g",
		Micros:    []string{"Vitamin B12", "Choline", "Selenium"},
		Why:       "High-protein breakfast for muscle support",
		Purpose:   "Complete amino acids early in the day",
		Alignment: "Protein-forward start supporting %s",
		Steps: []string{
			"Beat the eggs with salt and turmeric",
			"Saute chopped onion and tomato until soft",
			"Pour the eggs over the vegetables",
			"Fold the omelette once set",
			"Toast the bread and serve alongside",
		},
		Time: "15 mins", Difficulty: "Easy",
	},
	false: {
		Name:        "Scrambled eggs on toast",
		Ingredients: []string{"Eggs", "Whole wheat toast", "Butter", "Chives"},
		Protein:     "18g", Carbs: "26g", Fats: "14g",
		Micros:    []string{"Vitamin B12", "Choline", "Vitamin D"},
		Why:       "High-protein breakfast for muscle support",
		Purpose:   "Complete amino acids early in the day",
		Alignment: "Protein-forward start supporting %s",
		Steps: []string{
			"Whisk the eggs with a pinch of salt",
			"Melt butter in a pan over low heat",
			"Pour in the eggs and stir gently",
			"Pull off the heat while still soft",
			"Pile onto toast and finish with chives",
		},
		Time: "10 mins", Difficulty: "Easy",
	},
}

var indianMidMorning = []mealTemplate{
	{
		Name:        "Fresh fruit bowl",
		Ingredients: []string{"Apple", "Orange", "Pomegranate"},
		Protein:     "2g", Carbs: "28g", Fats: "0.5g",
		Micros:    []string{"Vitamin C", "Potassium", "Antioxidants"},
		Why:       "Natural sugar and fiber for mid-morning energy",
		Purpose:   "Vitamins and fiber to prevent an energy crash",
		Alignment: "Low-calorie snack aligned with %s",
		Steps: []string{
			"Wash all the fruit",
			"Core and chop the apple",
			"Peel and segment the orange",
			"Deseed the pomegranate",
			"Toss together and serve fresh",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
	{
		Name:        "Sprouts salad",
		Ingredients: []string{"Moong sprouts", "Cucumber", "Lemon", "Chaat masala"},
		Protein:     "7g", Carbs: "16g", Fats: "1g",
		Micros:    []string{"Folate", "Vitamin C", "Zinc"},
		Why:       "Live food packed with enzymes and micronutrients",
		Purpose:   "Sprouting raises the bioavailability of minerals",
		Alignment: "Micronutrient-dense snack supporting %s",
		Steps: []string{
			"Rinse the sprouts thoroughly",
			"Chop the cucumber",
			"Combine sprouts and cucumber in a bowl",
			"Squeeze the lemon over",
			"Season with chaat masala and serve",
		},
		Time: "10 mins", Difficulty: "Easy",
	},
	{
		Name:        "Buttermilk with roasted seeds",
		Ingredients: []string{"Buttermilk", "Pumpkin seeds", "Cumin"},
		Protein:     "6g", Carbs: "10g", Fats: "6g",
		Micros:    []string{"Calcium", "Magnesium"},
		Why:       "Cooling probiotic drink with a mineral boost",
		Purpose:   "Hydration and electrolytes between meals",
		Alignment: "Light snack keeping %s on track",
		Steps: []string{
			"Dry roast the pumpkin seeds for 2 minutes",
			"Whisk the buttermilk with a pinch of salt",
			"Add roasted cumin powder",
			"Pour into a glass",
			"Top with the seeds and serve chilled",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
}

var globalMidMorning = []mealTemplate{
	{
		Name:        "Almonds & walnuts",
		Ingredients: []string{"Almonds", "Walnuts"},
		Protein:     "5g", Carbs: "8g", Fats: "14g",
		Micros:    []string{"Omega-3", "Vitamin E"},
		Why:       "Healthy fat and protein snack",
		Purpose:   "Brain-supporting omega-3 fats and antioxidants",
		Alignment: "Supports %s with healthy fats and satiety",
		Steps: []string{
			"Portion 30g of mixed nuts",
			"Check the nuts are fresh, not rancid",
			"Combine in a small container",
			"Eat slowly and mindfully",
			"Pair with water or unsweetened tea",
		},
		Time: "2 mins", Difficulty: "Easy",
	},
	{
		Name:        "Fresh fruit bowl",
		Ingredients: []string{"Apple", "Orange", "Pomegranate"},
		Protein:     "2g", Carbs: "28g", Fats: "0.5g",
		Micros:    []string{"Vitamin C", "Potassium", "Antioxidants"},
		Why:       "Natural sugar and fiber for mid-morning energy",
		Purpose:   "Vitamins and fiber to prevent an energy crash",
		Alignment: "Low-calorie snack aligned with %s",
		Steps: []string{
			"Wash all the fruit",
			"Core and chop the apple",
			"Peel and segment the orange",
			"Deseed the pomegranate",
			"Toss together and serve fresh",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
	{
		Name:        "Carrot sticks with hummus",
		Ingredients: []string{"Carrot", "Hummus", "Olive oil"},
		Protein:     "4g", Carbs: "14g", Fats: "7g",
		Micros:    []string{"Vitamin A", "Folate"},
		Why:       "Crunchy snack with legume protein",
		Purpose:   "Fiber and plant protein to bridge to lunch",
		Alignment: "Light snack keeping %s on track",
		Steps: []string{
			"Peel the carrots",
			"Cut into even sticks",
			"Spoon the hummus into a small bowl",
			"Drizzle the hummus with olive oil",
			"Serve the sticks alongside for dipping",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
}

var indianEvening = []mealTemplate{
	{
		Name:        "Roasted chana chaat",
		Ingredients: []string{"Roasted chana", "Lemon", "Chaat masala"},
		Protein:     "6g", Carbs: "18g", Fats: "4g",
		Micros:    []string{"Magnesium", "Phosphorus"},
		Why:       "Protein-rich snack to prevent evening hunger",
		Purpose:   "Sustained energy that prevents overeating at dinner",
		Alignment: "Smart snacking aligned with %s",
		Steps: []string{
			"Measure a handful of roasted chana",
			"Chop a little onion if desired",
			"Toss the chana with the onion",
			"Squeeze the lemon over",
			"Dust with chaat masala and serve",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
	{
		Name:        "Sprouts chaat",
		Ingredients: []string{"Moong sprouts", "Tomato", "Cucumber", "Lemon"},
		Protein:     "6g", Carbs: "14g", Fats: "1g",
		Micros:    []string{"Folate", "Vitamin C", "Zinc"},
		Why:       "Live food packed with enzymes and micronutrients",
		Purpose:   "Sprouting raises the bioavailability of minerals",
		Alignment: "Micronutrient-dense snack supporting %s",
		Steps: []string{
			"Rinse the sprouts",
			"Dice the tomato and cucumber",
			"Combine everything in a bowl",
			"Dress with lemon juice",
			"Season lightly and serve fresh",
		},
		Time: "10 mins", Difficulty: "Easy",
	},
	{
		Name:        "Vegetable soup",
		Ingredients: []string{"Carrot", "Tomato", "Spinach", "Black pepper"},
		Protein:     "3g", Carbs: "12g", Fats: "2g",
		Micros:    []string{"Vitamin A", "Iron"},
		Why:       "Warm, low-calorie filler before dinner",
		Purpose:   "Hydrating vegetables take the edge off evening appetite",
		Alignment: "Very low calorie load protecting the %s target",
		Steps: []string{
			"Chop the carrot and tomato",
			"Simmer them in two cups of water for 10 minutes",
			"Add the spinach for the last 2 minutes",
			"Blend partially for body",
			"Season with black pepper and serve hot",
		},
		Time: "15 mins", Difficulty: "Easy",
	},
}

var globalEvening = []mealTemplate{
	{
		Name:        "Mixed nuts & seeds",
		Ingredients: []string{"Almonds", "Walnuts", "Pumpkin seeds"},
		Protein:     "6g", Carbs: "8g", Fats: "15g",
		Micros:    []string{"Magnesium", "Zinc", "Vitamin E"},
		Why:       "Protein-rich snack to prevent evening hunger",
		Purpose:   "Sustained energy that prevents overeating at dinner",
		Alignment: "Smart snacking aligned with %s",
		Steps: []string{
			"Portion 30g of nuts and seeds",
			"Toast lightly in a dry pan if preferred",
			"Let cool for a minute",
			"Combine in a small bowl",
			"Eat slowly with water",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
	{
		Name:        "Vegetable soup",
		Ingredients: []string{"Carrot", "Tomato", "Spinach", "Black pepper"},
		Protein:     "3g", Carbs: "12g", Fats: "2g",
		Micros:    []string{"Vitamin A", "Iron"},
		Why:       "Warm, low-calorie filler before dinner",
		Purpose:   "Hydrating vegetables take the edge off evening appetite",
		Alignment: "Very low calorie load protecting the %s target",
		Steps: []string{
			"Chop the carrot and tomato",
			"Simmer them in two cups of water for 10 minutes",
			"Add the spinach for the last 2 minutes",
			"Blend partially for body",
			"Season with black pepper and serve hot",
		},
		Time: "15 mins", Difficulty: "Easy",
	},
	{
		Name:        "Apple with seed mix",
		Ingredients: []string{"Apple", "Pumpkin seeds", "Sunflower seeds"},
		Protein:     "4g", Carbs: "22g", Fats: "8g",
		Micros:    []string{"Fiber", "Vitamin E", "Magnesium"},
		Why:       "Sweet-and-crunchy combination without added sugar",
		Purpose:   "Fruit fiber plus seed fats for a steady bridge to dinner",
		Alignment: "Light snack keeping %s on track",
		Steps: []string{
			"Wash and slice the apple",
			"Toast the seeds briefly in a dry pan",
			"Let the seeds cool",
			"Arrange apple slices on a plate",
			"Scatter the seeds over and serve",
		},
		Time: "5 mins", Difficulty: "Easy",
	},
}
