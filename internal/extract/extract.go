package extract

import (
	"sort"
	"strings"
)

// Skills extracts the skill list from free-form resume or job-posting text.
// It never errors: unusable input simply yields an empty list. The result is
// cleaned, filtered, deduplicated and sorted case-insensitively, so feeding a
// returned skill back in yields the same skill.
func Skills(text string) []string {
	cleaned := stripContactNoise(text)
	lower := strings.ToLower(cleaned)

	found := map[string]bool{}
	add := func(candidate string) {
		skill := CleanSkill(candidate)
		if skill != "" && LooksLikeSkill(skill) {
			found[skill] = true
		}
	}

	for _, pattern := range technicalPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			add(match)
		}
	}
	for _, match := range symbolLanguageRe.FindAllStringSubmatch(lower, -1) {
		add(match[2])
	}
	for _, pattern := range softPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			add(match)
		}
	}

	collectSectionSkills(cleaned, add)
	collectTokenSkills(cleaned, add)

	final := make([]string, 0, len(found))
	for skill := range found {
		if keepSkill(skill) {
			final = append(final, skill)
		}
	}

	final = Dedupe(final)
	sort.Slice(final, func(i, j int) bool {
		return strings.ToLower(final[i]) < strings.ToLower(final[j])
	})
	return final
}

// collectSectionSkills scans for skills-section headings and splits the lines
// beneath them on list separators.
func collectSectionSkills(text string, add func(string)) {
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if strings.ContainsAny(lower, "@") || strings.Contains(lower, "http") ||
			strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}

		if containsAny(lower, skillsSectionKeywords) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if trimmed == "" || containsAny(lower, sectionEndKeywords) {
			inSection = false
			continue
		}

		for _, item := range separatorRe.Split(trimmed, -1) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			item = sectionPrefix.ReplaceAllString(item, "")
			item = strings.TrimSpace(parenthetical.ReplaceAllString(item, ""))
			if len(item) >= 2 && len(item) <= 60 {
				add(item)
			}
		}
	}
}

// collectTokenSkills catches compound tech terms the section scan misses by
// splitting the whole text on separators and validating short fragments.
func collectTokenSkills(text string, add func(string)) {
	for _, tok := range tokenSplitRe.Split(text, -1) {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 || len(tok) > 60 {
			continue
		}
		// Sentence-like fragments are better served by the pattern pass.
		if len(strings.Fields(tok)) > 4 {
			continue
		}
		if verbFragment.MatchString(tok) {
			continue
		}
		if strings.Contains(tok, "@") || strings.Contains(tok, "http") || strings.Contains(tok, "www.") {
			continue
		}
		tok = sectionPrefix.ReplaceAllString(tok, "")
		tok = strings.TrimSpace(parenthetical.ReplaceAllString(tok, ""))
		if len(tok) >= 2 && len(tok) <= 60 {
			add(tok)
		}
	}
}

// keepSkill applies the final filtering pass over an already-cleaned skill.
func keepSkill(skill string) bool {
	lower := strings.ToLower(skill)
	for _, term := range excludedTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	if digitRunRe.MatchString(lower) {
		return false
	}
	for _, tok := range []string{"email", "phone", "linkedin", "github", "www", "http"} {
		if strings.Contains(lower, tok) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
