//go:build !cgo
// +build !cgo

package ocr

import (
	"context"
	"errors"
	"image"
)

var errNoCGO = errors.New("tesseract engines require CGO; build with CGO_ENABLED=1 and the tesseract library")

// TesseractEngine stub type when built without CGO (see tesseract.go for the real implementation).
type TesseractEngine struct{}

// NewTesseractEngine returns an error when built without CGO.
func NewTesseractEngine(_ string) (*TesseractEngine, error) { return nil, errNoCGO }

func (e *TesseractEngine) Recognize(context.Context, image.Image) (string, error) {
	return "", errNoCGO
}

func (e *TesseractEngine) Close() error { return nil }

// SparseEngine stub type when built without CGO.
type SparseEngine struct{}

// NewSparseEngine returns an error when built without CGO.
func NewSparseEngine(_ string) (*SparseEngine, error) { return nil, errNoCGO }

func (e *SparseEngine) Recognize(context.Context, image.Image) (string, error) {
	return "", errNoCGO
}

func (e *SparseEngine) Close() error { return nil }
