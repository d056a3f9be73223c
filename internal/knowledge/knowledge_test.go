package knowledge

import (
	"reflect"
	"testing"
)

func TestClassify_knownEntries(t *testing.T) {
	base := DefaultBase()
	tests := []struct {
		name     string
		in       string
		want     Level
		wantRec  string
		wantFreq string
		wantAmt  string
	}{
		{
			name:     "cane sugar matches sugar entry",
			in:       "cane sugar",
			want:     LevelRisky,
			wantRec:  "Limit intake to less than 25g per day",
			wantFreq: "Occasional (≤1 per week)",
			wantAmt:  "Max 1 serving when consumed",
		},
		{
			name:     "exact key",
			in:       "salt",
			want:     LevelRisky,
			wantRec:  "Limit to less than 5g per day",
			wantFreq: "Occasional (≤1 per week)",
			wantAmt:  "Max 1 serving when consumed",
		},
		{
			name:     "moderate entry",
			in:       "skimmed milk",
			want:     LevelModerate,
			wantRec:  "1-2 servings daily, prefer low-fat options",
			wantFreq: "1–3 servings/week",
			wantAmt:  "1 serving",
		},
		{
			name:     "healthy entry",
			in:       "rolled oats",
			want:     LevelHealthy,
			wantRec:  "Daily consumption beneficial",
			wantFreq: "Daily",
			wantAmt:  "1 serving (e.g., 1 cup/1 piece)",
		},
		{
			name:     "case insensitive",
			in:       "CANE SUGAR",
			want:     LevelRisky,
			wantRec:  "Limit intake to less than 25g per day",
			wantFreq: "Occasional (≤1 per week)",
			wantAmt:  "Max 1 serving when consumed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Classify(tt.in)
			if got.Level != tt.want {
				t.Errorf("level = %q, want %q", got.Level, tt.want)
			}
			if got.Recommendation != tt.wantRec {
				t.Errorf("recommendation = %q, want %q", got.Recommendation, tt.wantRec)
			}
			if got.Frequency != tt.wantFreq {
				t.Errorf("frequency = %q, want %q", got.Frequency, tt.wantFreq)
			}
			if got.Amount != tt.wantAmt {
				t.Errorf("amount = %q, want %q", got.Amount, tt.wantAmt)
			}
			if len(got.Effects) == 0 {
				t.Error("known entry should carry effects")
			}
		})
	}
}

func TestClassify_entryOrderIsMatchPriority(t *testing.T) {
	base := NewBase([]Entry{
		{Key: "butter", Level: LevelRisky, Recommendation: "first"},
		{Key: "butt", Level: LevelHealthy, Recommendation: "second"},
	}, Buckets{})
	got := base.Classify("peanut butter")
	if got.Level != LevelRisky || got.Recommendation != "first" {
		t.Errorf("Classify() = %+v, want the first matching entry", got)
	}
}

func TestClassify_bucketFallback(t *testing.T) {
	base := DefaultBase()

	got := base.Classify("fried onion")
	if got.Level != LevelRisky {
		t.Errorf("fried onion level = %q, want risky bucket", got.Level)
	}
	if got.Recommendation != "Limit consumption and check for healthier alternatives" {
		t.Errorf("risky bucket recommendation = %q", got.Recommendation)
	}

	got = base.Classify("white bread")
	if got.Level != LevelModerate {
		t.Errorf("white bread level = %q, want moderate bucket", got.Level)
	}
	if got.Recommendation != "Consume as part of a balanced diet" {
		t.Errorf("moderate bucket recommendation = %q", got.Recommendation)
	}
}

func TestClassify_unknown(t *testing.T) {
	base := DefaultBase()
	got := base.Classify("xyzzyplonk")
	if got.Level != LevelUnknown {
		t.Errorf("level = %q, want unknown", got.Level)
	}
	if got.Frequency != "Unknown" || got.Amount != "Unknown" {
		t.Errorf("unknown guidance = %q / %q, want placeholders", got.Frequency, got.Amount)
	}
}

func TestDefaultBase_shape(t *testing.T) {
	base := DefaultBase()
	if base.Len() != 20 {
		t.Errorf("entry count = %d, want 20", base.Len())
	}
	keys := base.Keys()
	if keys[0] != "sugar" || keys[1] != "salt" {
		t.Errorf("first keys = %v, want sugar then salt", keys[:2])
	}
	// Keys stay in declaration order across calls.
	if !reflect.DeepEqual(keys, base.Keys()) {
		t.Error("Keys() should be stable")
	}
}
