//go:build !cgo
// +build !cgo

package entity

import (
	"context"
	"errors"
)

// NERExtractor stub type when built without CGO (see onnx.go for the real implementation).
type NERExtractor struct{}

// NewNERExtractor returns an error when built without CGO (ONNX not available).
func NewNERExtractor(_, _ string, _ []string, _ int) (*NERExtractor, error) {
	return nil, errors.New("NER extractor requires CGO; build with CGO_ENABLED=1 and onnxruntime")
}

func (e *NERExtractor) Extract(context.Context, string) ([]Entity, error) {
	return nil, errors.New("NER extractor unavailable without CGO")
}

func (e *NERExtractor) Close() error { return nil }
