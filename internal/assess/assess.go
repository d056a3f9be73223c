// Package assess computes the personalized health assessment from ingredient
// tokens and a user profile. Everything here is pure and deterministic.
package assess

import (
	"fmt"
	"math"
	"strings"

	"github.com/foodlens/foodlens/internal/models"
)

// riskKeywords flag a token as a risk when it contains any of them.
var riskKeywords = []string{
	"sugar", "salt", "syrup", "fat", "hydrogenated", "trans",
	"butter", "cream", "oil", "sodium", "additive", "preservative",
}

// benefitKeywords flag a token as a benefit when it contains any of them.
var benefitKeywords = []string{
	"vitamin", "protein", "calcium", "iron", "fiber", "dietary fiber",
	"antioxidant", "mineral", "whole grain",
}

// highSugarTag is added whenever any token mentions sugar, on top of the
// per-token risk tags.
const highSugarTag = "high sugar content"

// dietRule marks a product as incompatible with a diet when any disallowed
// ingredient appears as an exact token.
type dietRule struct {
	diet       models.Diet
	disallowed []string
	warning    string
}

var dietRules = []dietRule{
	{
		diet:       models.DietVegan,
		disallowed: []string{"milk", "egg", "cheese", "butter", "honey", "gelatin", "whey"},
		warning:    "Not vegan-friendly",
	},
	{
		diet:       models.DietVegetarian,
		disallowed: []string{"meat", "fish", "chicken", "gelatin", "rennet", "lard"},
		warning:    "Not vegetarian-friendly",
	},
	{
		diet:       models.DietKeto,
		disallowed: []string{"sugar", "rice", "bread", "pasta", "syrup", "honey", "flour"},
		warning:    "High in carbs — not keto-friendly",
	},
	{
		diet:       models.DietDiabetic,
		disallowed: []string{"sugar", "syrup", "honey", "glucose", "fructose", "dextrose"},
		warning:    "High sugar — not suitable for diabetic diet",
	},
	{
		diet:       models.DietGlutenFree,
		disallowed: []string{"wheat", "barley", "rye", "gluten", "malt"},
		warning:    "Contains gluten — not gluten-free",
	},
}

// Scoring constants: the score starts at 100 and loses points per risk tag,
// for any allergy hit, and per diet conflict.
const (
	baseScore       = 100
	riskPenalty     = 8
	allergyPenalty  = 20
	dietFlagPenalty = 5
	verdictHealthy  = 80
	verdictModerate = 60
	verdictCaution  = 40
)

// Result holds the aggregate assessment for one scan.
type Result struct {
	Risks              []string
	Benefits           []string
	BMI                *float64
	BMICategory        string
	AllergyFlags       []string
	DietFlags          []string
	Score              int
	Verdict            string
	VerdictExplanation string
}

// Evaluate assesses tokens against profile. Token order affects only the
// order of the tag lists, never the score.
func Evaluate(tokens []string, profile models.UserProfile) Result {
	var res Result
	res.Risks, res.Benefits = tagTokens(tokens)
	res.BMI, res.BMICategory = BMI(profile.WeightKg, profile.HeightCm)
	res.AllergyFlags = allergyFlags(tokens, profile.Allergies)
	res.DietFlags = dietFlags(tokens, profile.Diet)
	res.Score = score(len(res.Risks), len(res.AllergyFlags) > 0, len(res.DietFlags))
	res.Verdict, res.VerdictExplanation = verdict(res.Score)
	return res
}

// tagTokens extracts deduplicated risk and benefit tags from tokens.
func tagTokens(tokens []string) (risks, benefits []string) {
	seenRisk := make(map[string]struct{})
	seenBenefit := make(map[string]struct{})
	sugar := false
	for _, tok := range tokens {
		if containsAny(tok, riskKeywords) {
			if _, dup := seenRisk[tok]; !dup {
				seenRisk[tok] = struct{}{}
				risks = append(risks, tok)
			}
		}
		if containsAny(tok, benefitKeywords) {
			if _, dup := seenBenefit[tok]; !dup {
				seenBenefit[tok] = struct{}{}
				benefits = append(benefits, tok)
			}
		}
		if strings.Contains(tok, "sugar") {
			sugar = true
		}
	}
	if sugar {
		risks = append(risks, highSugarTag)
	}
	return risks, benefits
}

// BMI returns weight/(height_m)^2 rounded to one decimal and its category.
// When weight or height is missing or non-positive, BMI is undefined: a nil
// value with category "Unknown".
func BMI(weightKg, heightCm float64) (*float64, string) {
	if weightKg <= 0 || heightCm <= 0 {
		return nil, "Unknown"
	}
	h := heightCm / 100.0
	v := weightKg / (h * h)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, "Unknown"
	}
	v = math.Round(v*10) / 10

	var category string
	switch {
	case v < 18.5:
		category = "Underweight"
	case v < 25:
		category = "Normal"
	case v < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return &v, category
}

// allergyFlags reports each declared allergen found as a substring of any
// token, case-insensitively.
func allergyFlags(tokens, allergies []string) []string {
	var flags []string
	for _, allergen := range allergies {
		needle := strings.ToLower(strings.TrimSpace(allergen))
		if needle == "" {
			continue
		}
		for _, tok := range tokens {
			if strings.Contains(strings.ToLower(tok), needle) {
				flags = append(flags, fmt.Sprintf("Contains allergen: %s", allergen))
				break
			}
		}
	}
	return flags
}

// dietFlags returns the warning for the profile's diet when any disallowed
// ingredient appears as an exact token.
func dietFlags(tokens []string, diet models.Diet) []string {
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}
	var flags []string
	for _, rule := range dietRules {
		if rule.diet != diet {
			continue
		}
		for _, bad := range rule.disallowed {
			if _, hit := tokenSet[bad]; hit {
				flags = append(flags, rule.warning)
				break
			}
		}
	}
	return flags
}

// score applies the linear penalty formula and clamps to [0, 100].
func score(riskCount int, anyAllergy bool, dietFlagCount int) int {
	s := baseScore - riskCount*riskPenalty - dietFlagCount*dietFlagPenalty
	if anyAllergy {
		s -= allergyPenalty
	}
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// verdict maps a score to its verdict band and fixed explanation.
func verdict(score int) (string, string) {
	switch {
	case score >= verdictHealthy:
		return "Healthy", "Safe for regular consumption in typical serving sizes."
	case score >= verdictModerate:
		return "Moderate", "Contains ingredients to be consumed in moderation."
	case score >= verdictCaution:
		return "Caution", "Contains multiple risk factors — limit frequency and amount."
	default:
		return "Unhealthy", "High-risk product — avoid frequent consumption."
	}
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
