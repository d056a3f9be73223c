package knowledge

// DefaultBase returns the built-in rule set. Entry order is match priority
// and is part of the contract: "cane sugar" hits the "sugar" entry because it
// is listed first among its substrings.
func DefaultBase() *Base {
	return NewBase(defaultEntries(), defaultBuckets())
}

func defaultEntries() []Entry {
	return []Entry{
		{
			Key:            "sugar",
			Level:          LevelRisky,
			Effects:        []string{"Weight gain", "Increased diabetes risk", "Tooth decay"},
			Recommendation: "Limit intake to less than 25g per day",
		},
		{
			Key:            "salt",
			Level:          LevelRisky,
			Effects:        []string{"High blood pressure", "Heart disease risk"},
			Recommendation: "Limit to less than 5g per day",
		},
		{
			Key:            "oil",
			Level:          LevelModerate,
			Effects:        []string{"Source of fats", "High in calories"},
			Recommendation: "Use in moderation, prefer unsaturated varieties",
		},
		{
			Key:            "butter",
			Level:          LevelRisky,
			Effects:        []string{"High in saturated fats", "Cholesterol increase"},
			Recommendation: "Limit consumption, use healthier alternatives",
		},
		{
			Key:            "cream",
			Level:          LevelRisky,
			Effects:        []string{"High in saturated fats", "High calorie content"},
			Recommendation: "Consume occasionally in small amounts",
		},
		{
			Key:            "milk",
			Level:          LevelModerate,
			Effects:        []string{"Calcium source", "Protein content"},
			Recommendation: "1-2 servings daily, prefer low-fat options",
		},
		{
			Key:            "cheese",
			Level:          LevelModerate,
			Effects:        []string{"Calcium source", "High in protein", "High in saturated fats"},
			Recommendation: "Moderate consumption (1-2 servings daily)",
		},
		{
			Key:            "apple",
			Level:          LevelHealthy,
			Effects:        []string{"Fiber source", "Vitamins and antioxidants"},
			Recommendation: "1-2 servings daily",
		},
		{
			Key:            "banana",
			Level:          LevelHealthy,
			Effects:        []string{"Potassium source", "Natural energy boost"},
			Recommendation: "1-2 servings daily",
		},
		{
			Key:            "carrot",
			Level:          LevelHealthy,
			Effects:        []string{"Vitamin A source", "Eye health", "Antioxidants"},
			Recommendation: "Regular consumption recommended",
		},
		{
			Key:            "spinach",
			Level:          LevelHealthy,
			Effects:        []string{"Iron source", "Rich in vitamins", "Antioxidants"},
			Recommendation: "Regular consumption recommended",
		},
		{
			Key:            "oats",
			Level:          LevelHealthy,
			Effects:        []string{"Fiber source", "Heart health", "Cholesterol reduction"},
			Recommendation: "Daily consumption beneficial",
		},
		{
			Key:            "lentil",
			Level:          LevelHealthy,
			Effects:        []string{"Protein source", "Fiber content", "Iron source"},
			Recommendation: "Regular consumption recommended",
		},
		{
			Key:            "whole wheat",
			Level:          LevelHealthy,
			Effects:        []string{"Fiber source", "Sustained energy release"},
			Recommendation: "Prefer over refined grains",
		},
		{
			Key:            "honey",
			Level:          LevelModerate,
			Effects:        []string{"Natural sweetener", "Antioxidants", "High in sugar"},
			Recommendation: "Use sparingly as sugar alternative",
		},
		{
			Key:            "egg",
			Level:          LevelModerate,
			Effects:        []string{"Protein source", "Vitamins and minerals", "Cholesterol content"},
			Recommendation: "3-7 servings weekly",
		},
		{
			Key:            "yogurt",
			Level:          LevelHealthy,
			Effects:        []string{"Probiotics", "Calcium source", "Protein content"},
			Recommendation: "Daily consumption beneficial (plain varieties)",
		},
		{
			Key:            "tomato",
			Level:          LevelHealthy,
			Effects:        []string{"Antioxidants", "Vitamin C source", "Lycopene content"},
			Recommendation: "Regular consumption recommended",
		},
		{
			Key:            "almond",
			Level:          LevelHealthy,
			Effects:        []string{"Healthy fats", "Vitamin E source", "Protein content"},
			Recommendation: "Handful daily as healthy snack",
		},
		{
			Key:            "soy",
			Level:          LevelHealthy,
			Effects:        []string{"Plant protein source", "May reduce cholesterol"},
			Recommendation: "Regular consumption beneficial",
		},
	}
}

func defaultBuckets() Buckets {
	return Buckets{
		Risky:    []string{"sugar", "salt", "oil", "butter", "cream", "fried", "syrup"},
		Moderate: []string{"milk", "cheese", "bread", "rice", "pasta", "nuts"},
		Healthy:  []string{"apple", "banana", "carrot", "spinach", "oats", "lentil"},
	}
}
