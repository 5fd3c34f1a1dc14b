package safety

import (
	"sort"
	"strings"
)

// BlockList is a normalized set of lowercase ingredient terms that must
// never appear in a generated meal.
type BlockList map[string]struct{}

func (b BlockList) add(term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term != "" {
		b[term] = struct{}{}
	}
}

// Contains reports whether the exact term is in the blocklist.
func (b BlockList) Contains(term string) bool {
	_, ok := b[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Terms returns the blocklist contents as a sorted slice.
func (b BlockList) Terms() []string {
	terms := make([]string, 0, len(b))
	for t := range b {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// matches reports whether a declared name reaches a table key. Matching is
// case-insensitive, exact or containment in either direction, so near-miss
// spellings like "egg" still reach the "Egg Allergy" entry.
func matches(declared, key string) bool {
	declared = strings.ToLower(strings.TrimSpace(declared))
	key = strings.ToLower(key)
	if declared == "" {
		return false
	}
	return declared == key || strings.Contains(key, declared) || strings.Contains(declared, key)
}

// MatchAllergens returns the allergen table entries a declared allergy name
// matches. Unknown allergy names match nothing; that is not an error.
func MatchAllergens(allergy string) []AllergenEntry {
	var entries []AllergenEntry
	for _, name := range allergenNames {
		if matches(allergy, name) {
			entries = append(entries, AllergenEntry{Name: name, Terms: allergenDerivatives[name]})
		}
	}
	return entries
}

// StyleExclusions returns the excluded terms for a dietary style. The style
// must match a table key exactly (case-insensitive); unknown styles exclude
// nothing.
func StyleExclusions(style string) []string {
	style = strings.ToLower(strings.TrimSpace(style))
	for name, terms := range dietaryExclusions {
		if strings.ToLower(name) == style {
			return terms
		}
	}
	return nil
}

// Compile builds the blocklist for the profile's declared allergies and
// dietary style. The result is the union of every matched allergen's
// derivative terms and the style's excluded terms, lowercased and
// de-duplicated. Compiling twice with the same input yields the same set.
func Compile(allergies []string, dietaryStyle string) BlockList {
	bl := make(BlockList)
	for _, allergy := range allergies {
		for _, entry := range MatchAllergens(allergy) {
			for _, term := range entry.Terms {
				bl.add(term)
			}
		}
	}
	for _, term := range StyleExclusions(dietaryStyle) {
		bl.add(term)
	}
	return bl
}

// IsSafe reports whether an ingredient name clears the blocklist. The check
// is containment in both directions: a blocklist term inside the name
// catches compounds like "peanut butter", and the name inside a term
// catches short names against compound terms. This deliberately over-blocks
// short words ("nut" inside "coconut") in favor of never leaking an
// allergen.
func IsSafe(name string, bl BlockList) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return true
	}
	for term := range bl {
		if strings.Contains(n, term) || strings.Contains(term, n) {
			return false
		}
	}
	return true
}
