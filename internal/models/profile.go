// Package models defines core data structures for user profiles and health reports.
package models

import "strings"

// Diet is one of the supported dietary restriction modes.
type Diet string

const (
	DietNone       Diet = "none"
	DietVegan      Diet = "vegan"
	DietVegetarian Diet = "vegetarian"
	DietKeto       Diet = "keto"
	DietDiabetic   Diet = "diabetic"
	DietGlutenFree Diet = "gluten-free"
)

// ParseDiet maps a free-form diet string to a Diet, case-insensitively.
// Unrecognized values (including "No restrictions") map to DietNone.
func ParseDiet(s string) Diet {
	switch Diet(strings.ToLower(strings.TrimSpace(s))) {
	case DietVegan:
		return DietVegan
	case DietVegetarian:
		return DietVegetarian
	case DietKeto:
		return DietKeto
	case DietDiabetic:
		return DietDiabetic
	case DietGlutenFree:
		return DietGlutenFree
	default:
		return DietNone
	}
}

// UserProfile describes the person the assessment is personalized for.
// Profiles are built per request and never stored.
type UserProfile struct {
	Gender    string   `json:"gender"`
	Age       int      `json:"age"`
	WeightKg  float64  `json:"weight"`
	HeightCm  float64  `json:"height"`
	Diet      Diet     `json:"diet"`
	Allergies []string `json:"allergies"`
}
