package extract

import "strings"

// synonymFamilies collapse spelling variants to one canonical short form
// before the general dedup rules run.
var synonymFamilies = map[string]string{
	"ci/cd":                  "CI/CD",
	"ci-cd":                  "CI/CD",
	"cicd":                   "CI/CD",
	"continuous integration": "CI/CD",
	"continuous deployment":  "CI/CD",
	"continuous delivery":    "CI/CD",
	"agile":                  "Agile",
	"agile methodology":      "Agile",
	"agile methodologies":    "Agile",
	"agile development":      "Agile",
}

// Dedupe collapses near-duplicate skills while preserving first-seen order.
// Rules, in order: synonym families map to their canonical form; exact matches
// are case-insensitive; when one skill contains another, the shorter general
// term wins; when token overlap exceeds 0.7 of the larger token set, the
// shorter term wins. Deterministic for a given input order.
func Dedupe(skills []string) []string {
	kept := make([]string, 0, len(skills))
	keptLower := make([]string, 0, len(skills))

	for _, raw := range skills {
		skill := strings.TrimSpace(raw)
		if len(skill) < 2 {
			continue
		}
		if canonical, ok := synonymFamilies[strings.ToLower(skill)]; ok {
			skill = canonical
		}
		lower := strings.ToLower(skill)

		duplicate := false
		for i, seen := range keptLower {
			if lower == seen {
				duplicate = true
				break
			}
			if strings.Contains(seen, lower) || strings.Contains(lower, seen) ||
				tokenOverlap(lower, seen) > 0.7 {
				// Keep the shorter, more general term at the earlier position.
				if len(lower) < len(seen) {
					kept[i] = skill
					keptLower[i] = lower
				}
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, skill)
			keptLower = append(keptLower, lower)
		}
	}
	return kept
}

// tokenOverlap is |A ∩ B| / max(|A|, |B|) over unique whitespace-split tokens,
// so a repeated token counts once on either side.
func tokenOverlap(a, b string) float64 {
	aSet := tokenSet(a)
	bSet := tokenSet(b)
	if len(aSet) == 0 || len(bSet) == 0 {
		return 0
	}
	shared := 0
	for tok := range bSet {
		if aSet[tok] {
			shared++
		}
	}
	larger := len(aSet)
	if len(bSet) > larger {
		larger = len(bSet)
	}
	return float64(shared) / float64(larger)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
