//go:build cgo
// +build cgo

// ONNX-based named-entity extraction (requires CGO and the onnxruntime library).

package entity

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// NERExtractor runs a BERT-style token-classification model with ONNX
// Runtime. It is created once at startup; construction failure means the
// process runs with Disabled instead.
type NERExtractor struct {
	session   *ort.AdvancedSession
	wordpiece *WordPiece
	labels    []string
	maxTokens int
	// Pre-allocated tensors for Run(); input data is overwritten per call.
	inputIDsTensor      *ort.Tensor[int64]
	attentionMaskTensor *ort.Tensor[int64]
	tokenTypeIDsTensor  *ort.Tensor[int64]
	logitsTensor        *ort.Tensor[float32]
	mu                  sync.Mutex
}

// NewNERExtractor creates an extractor for the model at modelPath with the
// vocabulary at vocabPath. labels must match the model's output label order.
func NewNERExtractor(modelPath, vocabPath string, labels []string, maxTokens int) (*NERExtractor, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("ner extractor needs a label set")
	}
	if maxTokens <= 0 {
		maxTokens = 256
	}
	wp, err := LoadWordPiece(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize ONNX runtime: %w", err)
	}

	inputIDs, attentionMask, tokenTypeIDs, _ := wp.Encode("", maxTokens)

	inputIDsTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens)), inputIDs)
	if err != nil {
		return nil, fmt.Errorf("create input_ids tensor: %w", err)
	}
	attentionMaskTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens)), attentionMask)
	if err != nil {
		inputIDsTensor.Destroy()
		return nil, fmt.Errorf("create attention_mask tensor: %w", err)
	}
	tokenTypeIDsTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens)), tokenTypeIDs)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		return nil, fmt.Errorf("create token_type_ids tensor: %w", err)
	}
	logits := make([]float32, maxTokens*len(labels))
	logitsTensor, err := ort.NewTensor(ort.NewShape(1, int64(maxTokens), int64(len(labels))), logits)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		tokenTypeIDsTensor.Destroy()
		return nil, fmt.Errorf("create logits tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"logits"},
		[]ort.ArbitraryTensor{inputIDsTensor, attentionMaskTensor, tokenTypeIDsTensor},
		[]ort.ArbitraryTensor{logitsTensor},
		nil,
	)
	if err != nil {
		inputIDsTensor.Destroy()
		attentionMaskTensor.Destroy()
		tokenTypeIDsTensor.Destroy()
		logitsTensor.Destroy()
		return nil, fmt.Errorf("create ONNX session: %w", err)
	}

	return &NERExtractor{
		session:             session,
		wordpiece:           wp,
		labels:              labels,
		maxTokens:           maxTokens,
		inputIDsTensor:      inputIDsTensor,
		attentionMaskTensor: attentionMaskTensor,
		tokenTypeIDsTensor:  tokenTypeIDsTensor,
		logitsTensor:        logitsTensor,
	}, nil
}

// Extract runs the model over text and returns aggregated entities.
func (e *NERExtractor) Extract(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	inputIDs, attentionMask, tokenTypeIDs, pieces := e.wordpiece.Encode(text, e.maxTokens)
	copy(e.inputIDsTensor.GetData(), inputIDs)
	copy(e.attentionMaskTensor.GetData(), attentionMask)
	copy(e.tokenTypeIDsTensor.GetData(), tokenTypeIDs)

	if err := e.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	// Position 0 is [CLS]; piece i sits at position i+1.
	logits := e.logitsTensor.GetData()
	numLabels := len(e.labels)
	predicted := make([]string, len(pieces))
	for i := range pieces {
		offset := (i + 1) * numLabels
		if offset+numLabels > len(logits) {
			break
		}
		best := 0
		for l := 1; l < numLabels; l++ {
			if logits[offset+l] > logits[offset+best] {
				best = l
			}
		}
		predicted[i] = e.labels[best]
	}

	return aggregate(pieces, predicted), nil
}

// Close destroys the session and tensors.
func (e *NERExtractor) Close() error {
	var err error
	if e.session != nil {
		err = e.session.Destroy()
		e.session = nil
	}
	for _, t := range []*ort.Tensor[int64]{e.inputIDsTensor, e.attentionMaskTensor, e.tokenTypeIDsTensor} {
		if t != nil {
			_ = t.Destroy()
		}
	}
	e.inputIDsTensor, e.attentionMaskTensor, e.tokenTypeIDsTensor = nil, nil, nil
	if e.logitsTensor != nil {
		_ = e.logitsTensor.Destroy()
		e.logitsTensor = nil
	}
	return err
}
