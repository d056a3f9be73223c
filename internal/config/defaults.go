package config

import "github.com/foodlens/foodlens/internal/store"

// DefaultLabels is the label set of the bundled ingredient token-classification
// model, in model output order.
var DefaultLabels = []string{"O", "B-INGREDIENT", "I-INGREDIENT", "B-NUTRIENT", "I-NUTRIENT"}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = "eng"
	}
	if cfg.NER.MaxTokens == 0 {
		cfg.NER.MaxTokens = 256
	}
	if cfg.NER.Labels == nil {
		cfg.NER.Labels = DefaultLabels
	}
	if cfg.Reports.CacheSize == 0 {
		cfg.Reports.CacheSize = store.DefaultCacheSize
	}
}
