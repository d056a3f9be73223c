// Package pipeline wires the image-to-report analysis stages together.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/foodlens/foodlens/internal/assess"
	"github.com/foodlens/foodlens/internal/entity"
	"github.com/foodlens/foodlens/internal/knowledge"
	"github.com/foodlens/foodlens/internal/models"
	"github.com/foodlens/foodlens/internal/preprocess"
	"github.com/foodlens/foodlens/internal/product"
	"github.com/foodlens/foodlens/internal/report"
	"github.com/foodlens/foodlens/internal/tokenize"
	"github.com/foodlens/foodlens/pkg/utils"
)

// Client-facing failure conditions. Everything else that goes wrong is an
// internal fault.
var (
	// ErrBadImage means the upload could not be decoded as an image.
	ErrBadImage = errors.New("image could not be decoded")
	// ErrNoText means neither recognizer found any text: bad input, not a
	// system fault.
	ErrNoText = errors.New("no text found in image")
)

// Recognizer is the two-tier OCR contract the pipeline consumes: text from
// the preprocessed image, falling back to the original. An empty result
// means no text was found.
type Recognizer interface {
	Recognize(ctx context.Context, processed, original image.Image) string
}

// Analyzer runs the full label analysis: decode, preprocess, recognize,
// tokenize, extract entities, recognize product, assess, assemble.
type Analyzer struct {
	recognizer Recognizer
	extractor  entity.Extractor
	rules      *knowledge.Store
	logger     *zap.Logger
}

// NewAnalyzer creates an analyzer. logger may be nil.
func NewAnalyzer(recognizer Recognizer, extractor entity.Extractor, rules *knowledge.Store, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		recognizer: recognizer,
		extractor:  extractor,
		rules:      rules,
		logger:     utils.LoggerOrNop(logger),
	}
}

// Analyze turns raw image bytes and a user profile into a health report.
// It fails with ErrBadImage for undecodable input and ErrNoText when no text
// was recognized; both are client errors. The analysis itself is
// deterministic: identical bytes and profile yield identical reports.
func (a *Analyzer) Analyze(ctx context.Context, imageBytes []byte, profile models.UserProfile) (*models.HealthReport, error) {
	original, err := preprocess.Decode(imageBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	processed := preprocess.Enhance(original)

	text := a.recognizer.Recognize(ctx, processed, original)
	if text == "" {
		return nil, ErrNoText
	}
	a.logger.Debug("text recognized",
		zap.Int("length", len(text)),
		zap.String("preview", utils.Truncate(utils.CollapseSpaces(text), 120)))

	tokens := tokenize.Ingredients(text)
	flat := a.extractTokens(ctx, text, tokens)
	rules := a.rules.Current()

	rep := report.Assemble(report.Input{
		Product:     product.Recognize(text),
		RawText:     text,
		Ingredients: tokens,
		Suggestions: a.suggestions(tokens, rules),
		Assessment:  assess.Evaluate(flat, profile),
		Rules:       rules,
		Profile:     profile,
	})
	return rep, nil
}

// extractTokens runs the entity model and returns the flattened token
// sequence the assessor consumes. Model failures are logged and treated as
// "no entities found"; when no entities exist the tokenizer output stands in,
// so a non-empty text never produces an empty token set.
func (a *Analyzer) extractTokens(ctx context.Context, text string, tokens []string) []string {
	ents, err := a.extractor.Extract(ctx, text)
	if err != nil {
		a.logger.Warn("entity extraction failed, falling back to tokenizer output", zap.Error(err))
		ents = nil
	}
	groups, flat := entity.Group(ents)
	if len(groups) == 0 {
		return tokens
	}
	a.logger.Debug("entities extracted",
		zap.Int("groups", len(groups)), zap.Int("tokens", len(flat)))
	return flat
}

// suggestions collects near-miss hints for tokens the knowledge base could
// not classify. Hints are advisory only and never feed classification.
func (a *Analyzer) suggestions(tokens []string, rules *knowledge.Base) []string {
	var hints []string
	for _, tok := range tokens {
		if rules.Classify(tok).Level != knowledge.LevelUnknown {
			continue
		}
		if key, ok := rules.Suggest(tok); ok {
			hints = append(hints, fmt.Sprintf("%s (did you mean %q?)", tok, key))
		}
	}
	return hints
}
