package models

// HealthScore is the numeric score block of a report.
type HealthScore struct {
	Score       int    `json:"score"`
	OutOf       int    `json:"out_of"`
	Explanation string `json:"explanation"`
}

// Analysis carries the score, verdict, and the reasons behind them.
type Analysis struct {
	HealthScore        HealthScore `json:"health_score"`
	Verdict            string      `json:"verdict"`
	VerdictExplanation string      `json:"verdict_explanation"`
	Reasons            []string    `json:"reasons"`
}

// PersonalizedLimits echoes the profile constraints the assessment used.
type PersonalizedLimits struct {
	Age       int      `json:"age"`
	Diet      Diet     `json:"diet"`
	Allergies []string `json:"allergies"`
}

// Personalization is the per-user block of a report. BMI is nil when weight
// or height was missing.
type Personalization struct {
	BMI                *float64           `json:"bmi"`
	BMICategory        string             `json:"bmi_category"`
	PersonalizedLimits PersonalizedLimits `json:"personalized_limits"`
}

// Advice is the consumption guidance for one ingredient.
type Advice struct {
	Frequency      string `json:"frequency"`
	Amount         string `json:"amount"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// AdviceItem pairs an ingredient with its risk level and guidance.
type AdviceItem struct {
	Ingredient string   `json:"ingredient"`
	Level      string   `json:"level"`
	Effects    []string `json:"effects"`
	Advice     Advice   `json:"advice"`
}

// OCRPreview exposes the raw recognizer output and the cleaned tokens for
// transparency. Suggestions are near-miss spelling hints for tokens the
// knowledge base could not classify.
type OCRPreview struct {
	RawText            string   `json:"raw_text"`
	CleanedIngredients []string `json:"cleaned_ingredients"`
	Suggestions        []string `json:"suggestions,omitempty"`
}

// HealthReport is the terminal artifact of one analysis request.
type HealthReport struct {
	DetectedProduct   string          `json:"detected_product"`
	Ingredients       []string        `json:"ingredients"`
	RiskTags          []string        `json:"risk_tags"`
	BenefitTags       []string        `json:"benefit_tags"`
	Analysis          Analysis        `json:"analysis"`
	Personalization   Personalization `json:"personalization"`
	ConsumptionAdvice []AdviceItem    `json:"consumption_advice"`
	OCRPreview        OCRPreview      `json:"ocr_preview"`
}
