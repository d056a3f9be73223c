//go:build cgo
// +build cgo

// Tesseract-backed engines (require CGO and the tesseract library).

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine is the primary recognizer: a full-page Tesseract pass in
// automatic page segmentation mode. Precise on clean images, brittle on noisy
// ones.
type TesseractEngine struct {
	language string
}

// NewTesseractEngine creates the primary engine. language defaults to "eng".
func NewTesseractEngine(language string) (*TesseractEngine, error) {
	if language == "" {
		language = "eng"
	}
	// Constructing a client up front surfaces a missing tesseract install at
	// startup instead of on the first request.
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("tesseract language %q: %w", language, err)
	}
	return &TesseractEngine{language: language}, nil
}

// Recognize runs a block-text OCR pass over img.
func (e *TesseractEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract text: %w", err)
	}
	return text, nil
}

// Close is a no-op; clients are per-call.
func (e *TesseractEngine) Close() error { return nil }

// SparseEngine is the secondary recognizer: sparse-text segmentation that
// picks up isolated regions on curved or busy packaging. Slower and noisier
// than the primary, but it finds text the block pass misses. Per-region
// fragments are joined with single spaces.
type SparseEngine struct {
	language string
}

// NewSparseEngine creates the secondary engine. language defaults to "eng".
func NewSparseEngine(language string) (*SparseEngine, error) {
	if language == "" {
		language = "eng"
	}
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("tesseract language %q: %w", language, err)
	}
	return &SparseEngine{language: language}, nil
}

// Recognize runs a sparse-text OCR pass over img and joins the recognized
// line regions with spaces.
func (e *SparseEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return "", fmt.Errorf("tesseract regions: %w", err)
	}
	fragments := make([]string, 0, len(boxes))
	for _, box := range boxes {
		if frag := strings.TrimSpace(box.Word); frag != "" {
			fragments = append(fragments, frag)
		}
	}
	return strings.Join(fragments, " "), nil
}

// Close is a no-op; clients are per-call.
func (e *SparseEngine) Close() error { return nil }

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode image for ocr: %w", err)
	}
	return buf.Bytes(), nil
}
