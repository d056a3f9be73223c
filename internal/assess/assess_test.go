package assess

import (
	"reflect"
	"testing"

	"github.com/foodlens/foodlens/internal/models"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		want     float64
		wantNil  bool
		category string
	}{
		{"normal", 70, 175, 22.9, false, "Normal"},
		{"underweight", 45, 175, 14.7, false, "Underweight"},
		{"overweight", 80, 170, 27.7, false, "Overweight"},
		{"obese", 100, 170, 34.6, false, "Obese"},
		{"boundary normal lower", 56.7, 175, 18.5, false, "Normal"},
		{"zero weight", 0, 175, 0, true, "Unknown"},
		{"zero height", 70, 0, 0, true, "Unknown"},
		{"negative weight", -5, 175, 0, true, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, category := BMI(tt.weight, tt.height)
			if tt.wantNil {
				if got != nil {
					t.Errorf("BMI = %v, want nil", *got)
				}
			} else {
				if got == nil {
					t.Fatal("BMI = nil, want value")
				}
				if *got != tt.want {
					t.Errorf("BMI = %v, want %v", *got, tt.want)
				}
			}
			if category != tt.category {
				t.Errorf("category = %q, want %q", category, tt.category)
			}
		})
	}
}

func TestTagTokens(t *testing.T) {
	risks, benefits := tagTokens([]string{
		"cane sugar", "salt", "palm oil", "wheat flour",
		"vitamin b12", "whey protein", "cane sugar",
	})
	wantRisks := []string{"cane sugar", "salt", "palm oil", "high sugar content"}
	if !reflect.DeepEqual(risks, wantRisks) {
		t.Errorf("risks = %v, want %v", risks, wantRisks)
	}
	wantBenefits := []string{"vitamin b12", "whey protein"}
	if !reflect.DeepEqual(benefits, wantBenefits) {
		t.Errorf("benefits = %v, want %v", benefits, wantBenefits)
	}
}

func TestTagTokens_noSugarNoSyntheticTag(t *testing.T) {
	risks, _ := tagTokens([]string{"salt", "water"})
	for _, r := range risks {
		if r == "high sugar content" {
			t.Error("synthetic sugar tag added without sugar token")
		}
	}
}

func TestAllergyFlags(t *testing.T) {
	tokens := []string{"milk solids", "wheat flour", "sugar"}
	got := allergyFlags(tokens, []string{"Milk", "peanut", " ", "wheat"})
	want := []string{"Contains allergen: Milk", "Contains allergen: wheat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("allergyFlags() = %v, want %v", got, want)
	}
}

func TestDietFlags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		diet   models.Diet
		want   []string
	}{
		{
			name:   "vegan with milk",
			tokens: []string{"sugar", "milk"},
			diet:   models.DietVegan,
			want:   []string{"Not vegan-friendly"},
		},
		{
			name:   "vegan substring does not trigger exact-match rule",
			tokens: []string{"milk solids"},
			diet:   models.DietVegan,
			want:   nil,
		},
		{
			name:   "vegetarian with gelatin",
			tokens: []string{"gelatin"},
			diet:   models.DietVegetarian,
			want:   []string{"Not vegetarian-friendly"},
		},
		{
			name:   "keto with flour",
			tokens: []string{"flour"},
			diet:   models.DietKeto,
			want:   []string{"High in carbs — not keto-friendly"},
		},
		{
			name:   "diabetic with fructose",
			tokens: []string{"fructose"},
			diet:   models.DietDiabetic,
			want:   []string{"High sugar — not suitable for diabetic diet"},
		},
		{
			name:   "gluten-free with wheat",
			tokens: []string{"wheat"},
			diet:   models.DietGlutenFree,
			want:   []string{"Contains gluten — not gluten-free"},
		},
		{
			name:   "no restrictions",
			tokens: []string{"milk", "wheat", "sugar"},
			diet:   models.DietNone,
			want:   nil,
		},
		{
			name:   "wrong diet does not trigger",
			tokens: []string{"meat"},
			diet:   models.DietVegan,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dietFlags(tt.tokens, tt.diet)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dietFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		risks     int
		allergy   bool
		dietFlags int
		want      int
	}{
		{"clean product", 0, false, 0, 100},
		{"one risk", 1, false, 0, 92},
		{"three risks", 3, false, 0, 76},
		{"allergy only", 0, true, 0, 80},
		{"one diet flag", 0, false, 1, 95},
		{"combined", 3, true, 2, 46},
		{"clamped at zero", 20, true, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := score(tt.risks, tt.allergy, tt.dietFlags); got != tt.want {
				t.Errorf("score(%d, %v, %d) = %d, want %d", tt.risks, tt.allergy, tt.dietFlags, got, tt.want)
			}
		})
	}
}

func TestScore_monotonicity(t *testing.T) {
	for risks := 0; risks < 16; risks++ {
		if score(risks+1, false, 0) > score(risks, false, 0) {
			t.Fatalf("adding a risk increased the score at %d risks", risks)
		}
	}
	// An allergy flag costs exactly 20 before clamping.
	if got, want := score(2, false, 0)-score(2, true, 0), 20; got != want {
		t.Errorf("allergy delta = %d, want %d", got, want)
	}
}

func TestScore_alwaysInRange(t *testing.T) {
	for risks := 0; risks <= 50; risks += 5 {
		for diet := 0; diet <= 10; diet++ {
			for _, allergy := range []bool{false, true} {
				got := score(risks, allergy, diet)
				if got < 0 || got > 100 {
					t.Fatalf("score(%d, %v, %d) = %d out of range", risks, allergy, diet, got)
				}
			}
		}
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Healthy"},
		{80, "Healthy"},
		{79, "Moderate"},
		{60, "Moderate"},
		{59, "Caution"},
		{40, "Caution"},
		{39, "Unhealthy"},
		{0, "Unhealthy"},
	}
	for _, tt := range tests {
		got, explanation := verdict(tt.score)
		if got != tt.want {
			t.Errorf("verdict(%d) = %q, want %q", tt.score, got, tt.want)
		}
		if explanation == "" {
			t.Errorf("verdict(%d) missing explanation", tt.score)
		}
	}
}

func TestEvaluate(t *testing.T) {
	profile := models.UserProfile{
		Gender:    "Unspecified",
		Age:       30,
		WeightKg:  70,
		HeightCm:  175,
		Diet:      models.DietVegan,
		Allergies: []string{"milk"},
	}
	res := Evaluate([]string{"sugar", "salt", "wheat flour", "milk"}, profile)

	wantRisks := []string{"sugar", "salt", "high sugar content"}
	if !reflect.DeepEqual(res.Risks, wantRisks) {
		t.Errorf("risks = %v, want %v", res.Risks, wantRisks)
	}
	if !reflect.DeepEqual(res.DietFlags, []string{"Not vegan-friendly"}) {
		t.Errorf("diet flags = %v", res.DietFlags)
	}
	if !reflect.DeepEqual(res.AllergyFlags, []string{"Contains allergen: milk"}) {
		t.Errorf("allergy flags = %v", res.AllergyFlags)
	}
	if res.BMI == nil || *res.BMI != 22.9 || res.BMICategory != "Normal" {
		t.Errorf("bmi = %v %q, want 22.9 Normal", res.BMI, res.BMICategory)
	}
	// 100 - 3*8 - 20 - 5 = 51.
	if res.Score != 51 {
		t.Errorf("score = %d, want 51", res.Score)
	}
	if res.Verdict != "Caution" {
		t.Errorf("verdict = %q, want Caution", res.Verdict)
	}
}

func TestEvaluate_deterministic(t *testing.T) {
	profile := models.UserProfile{WeightKg: 60, HeightCm: 160, Diet: models.DietKeto}
	tokens := []string{"sugar", "rice", "vitamin c"}
	first := Evaluate(tokens, profile)
	second := Evaluate(tokens, profile)
	if !reflect.DeepEqual(first, second) {
		t.Error("Evaluate() is not deterministic for identical input")
	}
}
