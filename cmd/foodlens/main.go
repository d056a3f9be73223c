// Package main is the FoodLens CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/foodlens/foodlens/internal/config"
	"github.com/foodlens/foodlens/internal/entity"
	"github.com/foodlens/foodlens/internal/knowledge"
	"github.com/foodlens/foodlens/internal/models"
	"github.com/foodlens/foodlens/internal/ocr"
	"github.com/foodlens/foodlens/internal/pipeline"
	"github.com/foodlens/foodlens/internal/server"
	"github.com/foodlens/foodlens/internal/store"
	"github.com/foodlens/foodlens/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/foodlens/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "foodlens server" from the project dir uses the project's config.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "analyze":
		runAnalyze()
	case "version", "--version", "-v":
		fmt.Printf("foodlens version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// Components holds everything the analyzer needs, for orderly shutdown.
type Components struct {
	Recognizer *ocr.Chain
	Extractor  entity.Extractor
	Rules      *knowledge.Store
	Reports    *store.ReportCache
	Analyzer   *pipeline.Analyzer
}

// Close releases the OCR engines and the entity model.
func (c *Components) Close() {
	if c.Recognizer != nil {
		_ = c.Recognizer.Close()
	}
	if c.Extractor != nil {
		_ = c.Extractor.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	var primary, secondary ocr.Engine
	if eng, err := ocr.NewTesseractEngine(cfg.OCR.Language); err != nil {
		logger.Warn("primary text recognizer unavailable", zap.Error(err))
	} else {
		primary = eng
	}
	if eng, err := ocr.NewSparseEngine(cfg.OCR.Language); err != nil {
		logger.Warn("secondary text recognizer unavailable", zap.Error(err))
	} else {
		secondary = eng
	}
	if primary == nil && secondary == nil {
		return nil, fmt.Errorf("no text recognizer available for language %q", cfg.OCR.Language)
	}
	recognizer := ocr.NewChain(primary, secondary, logger)

	var extractor entity.Extractor = entity.Disabled{}
	if cfg.NER.ModelPath != "" {
		ner, err := entity.NewNERExtractor(cfg.NER.ModelPath, cfg.NER.VocabPath, cfg.NER.Labels, cfg.NER.MaxTokens)
		if err != nil {
			logger.Warn("entity model unavailable, running without entity extraction",
				zap.String("model_path", cfg.NER.ModelPath), zap.Error(err))
		} else {
			extractor = ner
		}
	}

	base := knowledge.DefaultBase()
	if cfg.Rules.Path != "" {
		loaded, err := knowledge.LoadFile(cfg.Rules.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file: %w", err)
		}
		base = loaded
	}
	rules := knowledge.NewStore(base, logger)

	return &Components{
		Recognizer: recognizer,
		Extractor:  extractor,
		Rules:      rules,
		Reports:    store.NewReportCache(cfg.Reports.CacheSize),
		Analyzer:   pipeline.NewAnalyzer(recognizer, extractor, rules, logger),
	}, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Rules.Watch && cfg.Rules.Path != "" {
		if err := components.Rules.Watch(watchCtx, cfg.Rules.Path); err != nil {
			logger.Fatal("Failed to watch rules file", zap.Error(err))
		}
		logger.Info("watching rules file", zap.String("path", cfg.Rules.Path))
	}

	srv := server.NewServer(components.Analyzer, components.Reports, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	gender := fs.String("gender", "Unspecified", "gender for the report")
	age := fs.Int("age", 30, "age in years")
	weight := fs.Float64("weight", 65, "weight in kg")
	height := fs.Float64("height", 165, "height in cm")
	diet := fs.String("diet", "none", "diet preference (none, vegan, vegetarian, keto, diabetic, gluten-free)")
	allergies := fs.String("allergies", "", "comma-separated allergen list")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: foodlens analyze [flags] <image>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	imagePath := fs.Arg(0)

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Printf("Failed to read image: %v\n", err)
		os.Exit(1)
	}
	profile := models.UserProfile{
		Gender:    *gender,
		Age:       *age,
		WeightKg:  *weight,
		HeightCm:  *height,
		Diet:      models.ParseDiet(*diet),
		Allergies: server.SplitAllergies(*allergies),
	}

	report, err := components.Analyzer.Analyze(context.Background(), data, profile)
	if err != nil {
		fmt.Printf("Analysis failed: %v\n", err)
		os.Exit(1)
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println(`foodlens - Food label analysis service

Usage:
  foodlens server [flags]            Start the HTTP server
  foodlens analyze [flags] <image>   Analyze a label photo and print the report
  foodlens version                   Show version
  foodlens help                      Show this help

Common flags:
  -config <path>   Config file (default ` + defaultConfigPath + `)
  -debug           Enable debug logging

Analyze flags:
  -gender <s>      Gender for the report (default Unspecified)
  -age <n>         Age in years (default 30)
  -weight <kg>     Weight in kg (default 65)
  -height <cm>     Height in cm (default 165)
  -diet <s>        Diet preference (none, vegan, vegetarian, keto, diabetic, gluten-free)
  -allergies <s>   Comma-separated allergen list`)
}
