package knowledge

// suggestMaxDistance caps how far a token may be from a known key to still
// count as a plausible misread.
const suggestMaxDistance = 2

// Suggest returns the known entry key closest to token by edit distance,
// when one lies within the distance cap. Ties resolve to the earlier entry,
// keeping suggestions deterministic. Suggestions are hints only; they never
// feed back into classification.
func (b *Base) Suggest(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, e := range b.entries {
		// Identical token would not have been unknown; skip the zero case
		// fast without computing the matrix.
		if e.Key == token {
			continue
		}
		if d := editDistance(token, e.Key); d < bestDist {
			best, bestDist = e.Key, d
		}
	}
	if bestDist > suggestMaxDistance {
		return "", false
	}
	return best, true
}
