// Package product identifies the scanned item from raw label text.
package product

import "strings"

// Sentinel product names for text that matches nothing specific.
const (
	Unknown  = "Unknown"
	Packaged = "Packaged product"
)

// knownProduct maps a label substring to the product it identifies.
// Slice order is match priority: the first key found in the text wins.
type knownProduct struct {
	key  string
	name string
}

var knownProducts = []knownProduct{
	{"amul butter", "Amul Butter"},
	{"maggi", "Nestlé Maggi Noodles"},
	{"marie gold", "Britannia Marie Gold Biscuits"},
	{"oreo", "Oreo Biscuits"},
	{"parle g", "Parle-G Biscuits"},
	{"kitkat", "Nestlé KitKat"},
	{"dairy milk", "Cadbury Dairy Milk"},
	{"coca cola", "Coca Cola"},
	{"pepsi", "Pepsi"},
	{"lays", "Lays Chips"},
	{"tropicana", "Tropicana Juice"},
	{"nescafe", "Nescafe Coffee"},
}

// category scores a product family by keyword hits. Slice order is the
// tie-break: on equal hit counts the earlier category wins.
type category struct {
	name     string
	keywords []string
}

var categories = []category{
	{"cereal", []string{"cereal", "muesli", "flakes", "granola"}},
	{"chocolate", []string{"chocolate", "cocoa", "cacao", "bar"}},
	{"biscuit", []string{"biscuit", "cookie", "cracker"}},
	{"juice", []string{"juice", "nectar", "orange", "apple juice"}},
	{"snack", []string{"chips", "crisps", "puffs"}},
	{"milk_product", []string{"milk", "yogurt", "cheese", "butter"}},
}

var netWeightMarkers = []string{"net wt", "net weight"}

// Recognize returns the product name for the recognized label text. Matching
// priority: known product substring, then best keyword-category score, then a
// net-weight marker (generic packaged product), else Unknown.
func Recognize(text string) string {
	lower := strings.ToLower(text)

	for _, p := range knownProducts {
		if strings.Contains(lower, p.key) {
			return p.name
		}
	}

	best, bestHits := "", 0
	for _, c := range categories {
		hits := 0
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = c.name, hits
		}
	}
	if bestHits > 0 {
		return best
	}

	for _, marker := range netWeightMarkers {
		if strings.Contains(lower, marker) {
			return Packaged
		}
	}
	return Unknown
}
