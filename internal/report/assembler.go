// Package report assembles the terminal health report from the pipeline
// stages' outputs. Pure data transformation; failures can only come from
// upstream.
package report

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/foodlens/foodlens/internal/assess"
	"github.com/foodlens/foodlens/internal/knowledge"
	"github.com/foodlens/foodlens/internal/models"
)

const scoreExplanation = "Score computed from detected risks, allergies and diet compatibility."

var titleCaser = cases.Title(language.English)

// Input carries everything the assembler merges into one report.
type Input struct {
	Product     string
	RawText     string
	Ingredients []string
	Suggestions []string
	Assessment  assess.Result
	Rules       *knowledge.Base
	Profile     models.UserProfile
}

// Assemble builds the final report. Risk tags combine ingredient risks,
// allergy flags, and diet flags, in that order; the same combined list
// doubles as the verdict reasons.
func Assemble(in Input) *models.HealthReport {
	reasons := make([]string, 0,
		len(in.Assessment.Risks)+len(in.Assessment.AllergyFlags)+len(in.Assessment.DietFlags))
	reasons = append(reasons, in.Assessment.Risks...)
	reasons = append(reasons, in.Assessment.AllergyFlags...)
	reasons = append(reasons, in.Assessment.DietFlags...)

	return &models.HealthReport{
		DetectedProduct: in.Product,
		Ingredients:     in.Ingredients,
		RiskTags:        reasons,
		BenefitTags:     in.Assessment.Benefits,
		Analysis: models.Analysis{
			HealthScore: models.HealthScore{
				Score:       in.Assessment.Score,
				OutOf:       100,
				Explanation: scoreExplanation,
			},
			Verdict:            in.Assessment.Verdict,
			VerdictExplanation: in.Assessment.VerdictExplanation,
			Reasons:            reasons,
		},
		Personalization: models.Personalization{
			BMI:         in.Assessment.BMI,
			BMICategory: in.Assessment.BMICategory,
			PersonalizedLimits: models.PersonalizedLimits{
				Age:       in.Profile.Age,
				Diet:      in.Profile.Diet,
				Allergies: in.Profile.Allergies,
			},
		},
		ConsumptionAdvice: adviceItems(in.Ingredients, in.Rules),
		OCRPreview: models.OCRPreview{
			RawText:            in.RawText,
			CleanedIngredients: in.Ingredients,
			Suggestions:        in.Suggestions,
		},
	}
}

// adviceItems classifies every ingredient and formats per-tier guidance.
// Unknown-level ingredients are excluded from advice (they stay in the plain
// ingredient list).
func adviceItems(ingredients []string, rules *knowledge.Base) []models.AdviceItem {
	items := make([]models.AdviceItem, 0, len(ingredients))
	for _, ing := range ingredients {
		adv := rules.Classify(ing)
		if adv.Level == knowledge.LevelUnknown {
			continue
		}
		items = append(items, models.AdviceItem{
			Ingredient: titleCaser.String(ing),
			Level:      string(adv.Level),
			Effects:    adv.Effects,
			Advice: models.Advice{
				Frequency:      adv.Frequency,
				Amount:         adv.Amount,
				Summary:        summary(adv),
				Recommendation: adv.Recommendation,
			},
		})
	}
	return items
}

// summary renders the one-sentence human guidance for an advice tier.
func summary(adv knowledge.Advice) string {
	switch adv.Level {
	case knowledge.LevelRisky:
		return fmt.Sprintf("Consider limiting to %s. %s. %s", adv.Frequency, adv.Amount, adv.Recommendation)
	case knowledge.LevelModerate:
		return fmt.Sprintf("Consume in moderation: %s, typical amount: %s. %s", adv.Frequency, adv.Amount, adv.Recommendation)
	case knowledge.LevelHealthy:
		return fmt.Sprintf("Healthy choice: %s. Typical serving: %s. %s", adv.Frequency, adv.Amount, adv.Recommendation)
	default:
		return "No clear guidance — consume mindfully."
	}
}
