package entity

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Special vocabulary tokens for BERT-style models.
const (
	tokenPad = "[PAD]"
	tokenUnk = "[UNK]"
	tokenCls = "[CLS]"
	tokenSep = "[SEP]"
)

// maxWordLength guards the greedy matcher against pathological OCR blobs.
const maxWordLength = 100

// WordPiece encodes text into the input tensors a BERT-style
// token-classification model expects, using a vocabulary file with one token
// per line (line number = token ID).
type WordPiece struct {
	vocab map[string]int64
	padID int64
	unkID int64
	clsID int64
	sepID int64
}

// LoadWordPiece reads a vocabulary file. The special tokens [PAD], [UNK],
// [CLS], and [SEP] must be present.
func LoadWordPiece(path string) (*WordPiece, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab: %w", err)
	}
	defer f.Close()

	vocab := make(map[string]int64)
	scanner := bufio.NewScanner(f)
	var id int64
	for scanner.Scan() {
		tok := strings.TrimRight(scanner.Text(), "\r\n")
		if _, dup := vocab[tok]; !dup {
			vocab[tok] = id
		}
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}

	wp := &WordPiece{vocab: vocab}
	for _, st := range []struct {
		tok string
		dst *int64
	}{
		{tokenPad, &wp.padID},
		{tokenUnk, &wp.unkID},
		{tokenCls, &wp.clsID},
		{tokenSep, &wp.sepID},
	} {
		tokID, ok := vocab[st.tok]
		if !ok {
			return nil, fmt.Errorf("vocab missing special token %s", st.tok)
		}
		*st.dst = tokID
	}
	return wp, nil
}

// Encode tokenizes text and returns padded model inputs of length maxTokens,
// plus the word pieces aligned with positions 1..len(pieces) (position 0 is
// [CLS]). Pieces beyond maxTokens-2 are truncated.
func (w *WordPiece) Encode(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64, pieces []string) {
	if maxTokens <= 2 {
		maxTokens = 2
	}
	inputIDs = make([]int64, maxTokens)
	attentionMask = make([]int64, maxTokens)
	tokenTypeIDs = make([]int64, maxTokens)
	for i := range inputIDs {
		inputIDs[i] = w.padID
	}

	inputIDs[0] = w.clsID
	attentionMask[0] = 1

	pos := 1
	for _, word := range basicTokens(text) {
		for _, piece := range w.splitWord(word) {
			if pos >= maxTokens-1 {
				break
			}
			id, ok := w.vocab[piece]
			if !ok {
				id = w.unkID
			}
			inputIDs[pos] = id
			attentionMask[pos] = 1
			pieces = append(pieces, piece)
			pos++
		}
	}
	inputIDs[pos] = w.sepID
	attentionMask[pos] = 1
	return inputIDs, attentionMask, tokenTypeIDs, pieces
}

// splitWord applies greedy longest-match wordpiece splitting to one word.
// Continuation pieces carry the "##" prefix.
func (w *WordPiece) splitWord(word string) []string {
	if len(word) > maxWordLength {
		return []string{tokenUnk}
	}
	runes := []rune(word)
	var pieces []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		match := ""
		for end > start {
			candidate := string(runes[start:end])
			if start > 0 {
				candidate = "##" + candidate
			}
			if _, ok := w.vocab[candidate]; ok {
				match = candidate
				break
			}
			end--
		}
		if match == "" {
			// No piece matches: the whole word becomes [UNK].
			return []string{tokenUnk}
		}
		pieces = append(pieces, match)
		start = end
	}
	return pieces
}

// basicTokens lowercases text and splits it into words and standalone
// punctuation marks, the pre-tokenization BERT vocabularies assume.
func basicTokens(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}
