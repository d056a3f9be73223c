package entity

import "strings"

// labelCategory maps a model label such as "B-INGREDIENT" or "I-NUTRIENT" to
// its category. The outside label "O" (and blanks) carry no entity.
func labelCategory(label string) (string, bool) {
	switch label {
	case "", "O":
		return "", false
	}
	cat := strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")
	if cat == "" {
		cat = DefaultCategory
	}
	return cat, true
}

// aggregate merges aligned piece/label predictions into entities using
// simple aggregation: "##" continuation pieces rejoin the word they belong
// to (keeping the head piece's category), and adjacent words with the same
// category merge into one span unless a "B-" label starts a fresh one.
func aggregate(pieces, labels []string) []Entity {
	n := len(pieces)
	if len(labels) < n {
		n = len(labels)
	}
	var ents []Entity
	attached := false // previous head piece extended the last entity's word
	for i := 0; i < n; i++ {
		piece := pieces[i]
		if piece == "" {
			attached = false
			continue
		}
		if strings.HasPrefix(piece, "##") {
			if attached && len(ents) > 0 {
				ents[len(ents)-1].Word += strings.TrimPrefix(piece, "##")
			}
			continue
		}
		cat, ok := labelCategory(labels[i])
		if !ok {
			attached = false
			continue
		}
		if len(ents) > 0 && ents[len(ents)-1].Category == cat && labels[i] != "B-"+cat {
			ents[len(ents)-1].Word += " " + piece
		} else {
			ents = append(ents, Entity{Category: cat, Word: piece})
		}
		attached = true
	}

	out := ents[:0]
	for _, ent := range ents {
		if CleanToken(ent.Word) != "" {
			out = append(out, ent)
		}
	}
	return out
}
