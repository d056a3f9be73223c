package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/foodlens/foodlens/internal/assess"
	"github.com/foodlens/foodlens/internal/knowledge"
	"github.com/foodlens/foodlens/internal/models"
)

func testInput() Input {
	profile := models.UserProfile{
		Age:       30,
		WeightKg:  70,
		HeightCm:  175,
		Diet:      models.DietVegan,
		Allergies: []string{"milk"},
	}
	tokens := []string{"sugar", "salt", "wheat flour", "milk", "xyzzyplonk"}
	return Input{
		Product:     "Packaged product",
		RawText:     "Sugar, Salt, Wheat Flour, Milk, xyzzyplonk",
		Ingredients: tokens,
		Assessment:  assess.Evaluate(tokens, profile),
		Rules:       knowledge.DefaultBase(),
		Profile:     profile,
	}
}

func TestAssemble_riskTagsCombineFlags(t *testing.T) {
	rep := Assemble(testInput())

	want := []string{
		"sugar", "salt", "high sugar content",
		"Contains allergen: milk",
		"Not vegan-friendly",
	}
	if !reflect.DeepEqual(rep.RiskTags, want) {
		t.Errorf("risk tags = %v, want %v", rep.RiskTags, want)
	}
	if !reflect.DeepEqual(rep.Analysis.Reasons, want) {
		t.Errorf("reasons = %v, want same combined list", rep.Analysis.Reasons)
	}
}

func TestAssemble_analysisBlock(t *testing.T) {
	rep := Assemble(testInput())

	if rep.Analysis.HealthScore.OutOf != 100 {
		t.Errorf("out_of = %d, want 100", rep.Analysis.HealthScore.OutOf)
	}
	if rep.Analysis.HealthScore.Explanation == "" {
		t.Error("score explanation missing")
	}
	// 3 risks, allergy, 1 diet flag: 100 - 24 - 20 - 5 = 51 -> Caution.
	if rep.Analysis.HealthScore.Score != 51 || rep.Analysis.Verdict != "Caution" {
		t.Errorf("score/verdict = %d %q, want 51 Caution",
			rep.Analysis.HealthScore.Score, rep.Analysis.Verdict)
	}
}

func TestAssemble_personalization(t *testing.T) {
	rep := Assemble(testInput())

	if rep.Personalization.BMI == nil || *rep.Personalization.BMI != 22.9 {
		t.Errorf("bmi = %v, want 22.9", rep.Personalization.BMI)
	}
	if rep.Personalization.BMICategory != "Normal" {
		t.Errorf("bmi category = %q, want Normal", rep.Personalization.BMICategory)
	}
	limits := rep.Personalization.PersonalizedLimits
	if limits.Age != 30 || limits.Diet != models.DietVegan || !reflect.DeepEqual(limits.Allergies, []string{"milk"}) {
		t.Errorf("personalized limits = %+v", limits)
	}
}

func TestAssemble_adviceSkipsUnknown(t *testing.T) {
	rep := Assemble(testInput())

	for _, item := range rep.ConsumptionAdvice {
		if item.Level == string(knowledge.LevelUnknown) {
			t.Errorf("unknown-level item %q in advice", item.Ingredient)
		}
		if item.Ingredient == "Xyzzyplonk" {
			t.Error("unclassifiable ingredient should be excluded from advice")
		}
	}
	// But it stays in the plain ingredient list.
	found := false
	for _, ing := range rep.Ingredients {
		if ing == "xyzzyplonk" {
			found = true
		}
	}
	if !found {
		t.Error("unclassifiable ingredient missing from ingredient list")
	}
}

func TestAssemble_adviceFormatting(t *testing.T) {
	rep := Assemble(testInput())

	var sugar, milk *models.AdviceItem
	for i := range rep.ConsumptionAdvice {
		switch rep.ConsumptionAdvice[i].Ingredient {
		case "Sugar":
			sugar = &rep.ConsumptionAdvice[i]
		case "Milk":
			milk = &rep.ConsumptionAdvice[i]
		}
	}
	if sugar == nil {
		t.Fatal("no advice item for Sugar (names are title-cased)")
	}
	if sugar.Level != "risky" {
		t.Errorf("sugar level = %q, want risky", sugar.Level)
	}
	if !strings.HasPrefix(sugar.Advice.Summary, "Consider limiting to ") {
		t.Errorf("risky summary = %q", sugar.Advice.Summary)
	}
	if sugar.Advice.Recommendation != "Limit intake to less than 25g per day" {
		t.Errorf("sugar recommendation = %q", sugar.Advice.Recommendation)
	}

	if milk == nil {
		t.Fatal("no advice item for Milk")
	}
	if milk.Level != "moderate" {
		t.Errorf("milk level = %q, want moderate", milk.Level)
	}
	if !strings.HasPrefix(milk.Advice.Summary, "Consume in moderation: ") {
		t.Errorf("moderate summary = %q", milk.Advice.Summary)
	}
}

func TestAssemble_healthySummary(t *testing.T) {
	profile := models.UserProfile{Age: 25, WeightKg: 60, HeightCm: 170}
	tokens := []string{"rolled oats"}
	rep := Assemble(Input{
		Product:     "cereal",
		RawText:     "Rolled Oats",
		Ingredients: tokens,
		Assessment:  assess.Evaluate(tokens, profile),
		Rules:       knowledge.DefaultBase(),
		Profile:     profile,
	})
	if len(rep.ConsumptionAdvice) != 1 {
		t.Fatalf("advice items = %d, want 1", len(rep.ConsumptionAdvice))
	}
	item := rep.ConsumptionAdvice[0]
	if item.Ingredient != "Rolled Oats" || item.Level != "healthy" {
		t.Errorf("item = %+v", item)
	}
	if !strings.HasPrefix(item.Advice.Summary, "Healthy choice: ") {
		t.Errorf("healthy summary = %q", item.Advice.Summary)
	}
}

func TestAssemble_ocrPreview(t *testing.T) {
	in := testInput()
	in.Suggestions = []string{`xyzzyplonk (did you mean "spinach"?)`}
	rep := Assemble(in)

	if rep.OCRPreview.RawText != in.RawText {
		t.Errorf("raw text = %q", rep.OCRPreview.RawText)
	}
	if !reflect.DeepEqual(rep.OCRPreview.CleanedIngredients, in.Ingredients) {
		t.Errorf("cleaned ingredients = %v", rep.OCRPreview.CleanedIngredients)
	}
	if !reflect.DeepEqual(rep.OCRPreview.Suggestions, in.Suggestions) {
		t.Errorf("suggestions = %v", rep.OCRPreview.Suggestions)
	}
}
