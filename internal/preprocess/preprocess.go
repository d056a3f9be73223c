// Package preprocess normalizes label photographs before text recognition.
package preprocess

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// contrastBoost is the imaging percentage equivalent of a 2.0x contrast multiplier.
const contrastBoost = 100

// Decode parses raw image bytes into an image. Any format registered with
// the imaging library (PNG, JPEG, GIF, TIFF, BMP) is accepted.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Enhance returns a new grayscale, sharpened, contrast-boosted copy of img.
// The input image is never mutated; recognizers that want the original for a
// fallback pass keep their own reference.
func Enhance(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	sharpened := imaging.Sharpen(gray, 1.0)
	return imaging.AdjustContrast(sharpened, contrastBoost)
}
