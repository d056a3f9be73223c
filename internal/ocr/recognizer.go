// Package ocr turns label photographs into raw text.
package ocr

import (
	"context"
	"image"
	"strings"

	"go.uber.org/zap"

	"github.com/foodlens/foodlens/pkg/utils"
)

// Engine produces text from a single image. Implementations are created once
// at startup and are safe for concurrent use.
type Engine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
	Close() error
}

// Chain is the two-tier recognition strategy: a precise primary engine runs
// on the preprocessed image first, and a more tolerant secondary engine runs
// on the original image only when the primary found nothing. Either engine
// may be nil when it failed to construct at startup; a missing or erroring
// engine is skipped, which can only make the result emptier, never an error.
type Chain struct {
	primary   Engine
	secondary Engine
	logger    *zap.Logger
}

// NewChain creates a recognition chain. logger may be nil.
func NewChain(primary, secondary Engine, logger *zap.Logger) *Chain {
	return &Chain{
		primary:   primary,
		secondary: secondary,
		logger:    utils.LoggerOrNop(logger),
	}
}

// Recognize runs the chain over the preprocessed and original images and
// returns trimmed text. An empty result means no text was found; callers
// treat that as bad input, not a system fault.
func (c *Chain) Recognize(ctx context.Context, processed, original image.Image) string {
	if text := c.run(ctx, c.primary, processed, "primary"); text != "" {
		return text
	}
	return c.run(ctx, c.secondary, original, "secondary")
}

func (c *Chain) run(ctx context.Context, engine Engine, img image.Image, stage string) string {
	if engine == nil || img == nil {
		return ""
	}
	text, err := engine.Recognize(ctx, img)
	if err != nil {
		c.logger.Warn("ocr engine failed, continuing without its output",
			zap.String("stage", stage), zap.Error(err))
		return ""
	}
	return strings.TrimSpace(text)
}

// Close releases both engines.
func (c *Chain) Close() error {
	var err error
	if c.primary != nil {
		err = c.primary.Close()
	}
	if c.secondary != nil {
		if cerr := c.secondary.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
