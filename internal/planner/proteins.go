package planner

import (
	"fmt"
	"strings"

	"nutrisync/internal/safety"
)

// ResolveProteins reconciles user-selected proteins against the dietary
// style and the declared allergies. Style filtering runs first, then the
// allergy cross-check, so each warning is attributable to its actual cause.
// The returned list is always a subset of the input; warnings is empty when
// no conflicts occurred.
func ResolveProteins(selected []string, dietaryStyle string, allergies []string) ([]string, []string) {
	var warnings []string

	styleTerms := safety.StyleExclusions(dietaryStyle)
	styleAllowed := make([]string, 0, len(selected))
	var styleRemoved []string
	for _, protein := range selected {
		if overlapsAny(protein, styleTerms) {
			styleRemoved = append(styleRemoved, protein)
			continue
		}
		styleAllowed = append(styleAllowed, protein)
	}
	if len(styleRemoved) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Removed %s: not compatible with a %s diet",
			strings.Join(styleRemoved, ", "), dietaryStyle))
	}

	allowed := make([]string, 0, len(styleAllowed))
	for _, protein := range styleAllowed {
		if name, conflict := allergyConflict(protein, allergies); conflict {
			warnings = append(warnings, fmt.Sprintf(
				"Removed %s: conflicts with declared allergy %s", protein, name))
			continue
		}
		allowed = append(allowed, protein)
	}

	return allowed, warnings
}

// allergyConflict reports whether a protein name overlaps the derivative
// terms of any allergen matched by the declared allergies, and which
// allergen caused the removal.
func allergyConflict(protein string, allergies []string) (string, bool) {
	for _, allergy := range allergies {
		for _, entry := range safety.MatchAllergens(allergy) {
			if overlapsAny(protein, entry.Terms) {
				return entry.Name, true
			}
		}
	}
	return "", false
}

// overlapsAny applies the same bidirectional containment used for blocklist
// checks to a protein name against a term list.
func overlapsAny(name string, terms []string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(n, term) || strings.Contains(term, n) {
			return true
		}
	}
	return false
}
