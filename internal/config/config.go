// Package config provides configuration loading and structs for the FoodLens server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	OCR     OCRConfig     `yaml:"ocr"`
	NER     NERConfig     `yaml:"ner"`
	Rules   RulesConfig   `yaml:"rules"`
	Reports ReportsConfig `yaml:"reports"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// OCRConfig holds text recognition settings.
type OCRConfig struct {
	Language string `yaml:"language"`
}

// NERConfig holds entity extraction model settings. An empty ModelPath
// disables entity extraction entirely.
type NERConfig struct {
	ModelPath string   `yaml:"model_path"`
	VocabPath string   `yaml:"vocab_path"`
	MaxTokens int      `yaml:"max_tokens"`
	Labels    []string `yaml:"labels"`
}

// RulesConfig holds ingredient knowledge base settings. An empty Path uses
// the built-in rules.
type RulesConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// ReportsConfig holds report cache settings.
type ReportsConfig struct {
	CacheSize int `yaml:"cache_size"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	if cfg.NER.ModelPath != "" {
		cfg.NER.ModelPath = expandPath(cfg.NER.ModelPath, configDir)
	}
	if cfg.NER.VocabPath != "" {
		cfg.NER.VocabPath = expandPath(cfg.NER.VocabPath, configDir)
	}
	if cfg.Rules.Path != "" {
		cfg.Rules.Path = expandPath(cfg.Rules.Path, configDir)
	}

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
