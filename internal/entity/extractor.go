// Package entity groups recognized text into semantic categories using an
// optional pretrained token-classification model.
package entity

import (
	"context"
	"strings"
)

// DefaultCategory labels entities whose category the model did not predict.
const DefaultCategory = "OTHER"

// FallbackGroup is the synthetic group used when no entities were found and
// the tokenizer output stands in for the model's ingredient predictions.
const FallbackGroup = "INGREDIENTS"

// Entity is one model prediction: a word and its category.
type Entity struct {
	Category string
	Word     string
}

// Extractor produces entities from raw text. Implementations are selected at
// startup; when no model is available the process runs with Disabled for its
// whole lifetime.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Entity, error)
	Close() error
}

// Disabled is the permanent fallback extractor. It always reports no
// entities, which makes callers substitute the tokenizer output.
type Disabled struct{}

// Extract always returns no entities.
func (Disabled) Extract(context.Context, string) ([]Entity, error) { return nil, nil }

// Close is a no-op.
func (Disabled) Close() error { return nil }

// Group arranges entities into category-keyed ordered groups plus the
// flattened token sequence in prediction order. Entities that clean to the
// empty string are dropped.
func Group(ents []Entity) (map[string][]string, []string) {
	groups := make(map[string][]string)
	var flat []string
	for _, ent := range ents {
		word := CleanToken(ent.Word)
		if word == "" {
			continue
		}
		cat := ent.Category
		if cat == "" {
			cat = DefaultCategory
		}
		groups[cat] = append(groups[cat], word)
		flat = append(flat, word)
	}
	return groups, flat
}

// CleanToken strips sub-word markers and surrounding punctuation from a
// model token and lowercases it.
func CleanToken(tok string) string {
	tok = strings.ReplaceAll(tok, "##", "")
	tok = strings.Trim(tok, " ,.-")
	return strings.ToLower(tok)
}
