package bncc

import "strings"

// Catalog is the immutable (disciplina, ano) -> habilidades table.
type Catalog map[string]map[string][]string

// SelectableSkills returns the skills for the pair, in catalog order.
// Unknown pairs return an empty slice, never an error.
func (c Catalog) SelectableSkills(discipline, grade string) []string {
	grades, ok := c[discipline]
	if !ok {
		return []string{}
	}
	skills, ok := grades[grade]
	if !ok {
		return []string{}
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// Contains reports whether skill is an exact catalog entry for the pair.
func (c Catalog) Contains(discipline, grade, skill string) bool {
	for _, s := range c.SelectableSkills(discipline, grade) {
		if s == skill {
			return true
		}
	}
	return false
}

// ToggleSkill adds the skill if absent and removes it if present.
// The input slice is not mutated. Double toggle restores the original set.
func ToggleSkill(selected []string, skill string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == skill {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, skill)
	}
	return out
}

// SplitSuggestionReply breaks a raw model reply into candidate lines:
// split on line breaks, trim, drop empties.
func SplitSuggestionReply(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// FilterSuggestions intersects the model's candidate lines with the
// available catalog slice, keeping catalog strings verbatim. The model is
// not trusted to quote entries exactly; anything reformatted is dropped.
// When nothing survives the intersection, the first raw candidate is kept
// as-is rather than leaving the selection empty. Esse fallback pode
// injetar texto fora do catálogo; comportamento preservado do produto.
func FilterSuggestions(available, candidates []string) []string {
	if len(candidates) == 0 {
		return []string{}
	}
	availableSet := make(map[string]struct{}, len(available))
	for _, s := range available {
		availableSet[s] = struct{}{}
	}
	var filtered []string
	for _, c := range candidates {
		if _, ok := availableSet[c]; ok {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return []string{candidates[0]}
	}
	return filtered
}
