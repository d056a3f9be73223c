// Package tokenize splits raw recognized text into candidate ingredient tokens.
package tokenize

import "strings"

// isDelimiter reports whether r separates list items on a food label.
func isDelimiter(r rune) bool {
	switch r {
	case ',', '\n', ';', ':', '.':
		return true
	}
	return false
}

// Ingredients splits text on list delimiters and returns normalized tokens,
// deduplicated by exact equality with first-seen order preserved. This is a
// lossy heuristic: a multi-word name survives only if the recognized text did
// not contain a delimiter inside it.
func Ingredients(text string) []string {
	items := strings.FieldsFunc(text, isDelimiter)
	seen := make(map[string]struct{}, len(items))
	tokens := make([]string, 0, len(items))
	for _, item := range items {
		tok := Normalize(item)
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Normalize trims and lowercases a fragment and strips every character that
// is not a letter, digit, hyphen, or space.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
