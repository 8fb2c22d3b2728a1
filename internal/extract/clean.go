package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	strengthQualifier = regexp.MustCompile(`(?i)^(strong|expert|basic|intermediate|advanced)\s+`)
	trailingQualifier = regexp.MustCompile(`(?i)\s+(skills?|knowledge|experience|proficiency)$`)
	dottedNameRe      = regexp.MustCompile(`^[a-z]+\.[a-z]+$`)
	acronymLineRe     = regexp.MustCompile(`^[A-Z]{2,6}$`)
	dottedSuffixRe    = regexp.MustCompile(`\.[a-z]{2,5}$`)
	techMarkerRe      = regexp.MustCompile(`\b(api|aws|gcp|sql|html|css)\b`)
)

// acronymTokens stay fully uppercase when a candidate is title-cased.
var acronymTokens = map[string]bool{
	"api": true, "css": true, "html": true, "sql": true, "nosql": true,
	"aws": true, "gcp": true, "gpu": true, "cpu": true, "ci/cd": true,
}

// skillReplacements fixes display casing for names the generic title-casing
// gets wrong, and expands a few shorthands.
var skillReplacements = map[string]string{
	"Javascript": "JavaScript",
	"Typescript": "TypeScript",
	"Node.Js":    "Node.js",
	"React.Js":   "React",
	"Vue.Js":     "Vue.js",
	"Next.Js":    "Next.js",
	"Nuxt.Js":    "Nuxt.js",
	"Html":       "HTML",
	"Html5":      "HTML",
	"Css":        "CSS",
	"Css3":       "CSS",
	"Sql":        "SQL",
	"Nosql":      "NoSQL",
	"Api":        "API",
	"Rest Api":   "REST API",
	"Graphql":    "GraphQL",
	"Ai":         "AI",
	"Ml":         "Machine Learning",
	"Ci/Cd":      "CI/CD",
	"Devops":     "DevOps",
	"Postgresql": "PostgreSQL",
	"Mysql":      "MySQL",
	"Mongodb":    "MongoDB",
	"Sql Server": "SQL Server",
	"Power Bi":   "Power BI",
}

// titleWord uppercases the first letter of each alpha run, mirroring how
// display names like "machine learning" become "Machine Learning".
func titleWord(word string) string {
	var b strings.Builder
	prevAlpha := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			if prevAlpha {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevAlpha = true
		} else {
			b.WriteRune(r)
			prevAlpha = false
		}
	}
	return b.String()
}

// CleanSkill normalizes a raw skill candidate into its display form. It strips
// section labels, strength qualifiers and parentheticals, title-cases the
// remainder while preserving acronyms and dotted names, then applies the
// replacement table. Returns "" when nothing usable is left.
func CleanSkill(skill string) string {
	skill = strings.TrimSpace(skill)
	skill = sectionPrefix.ReplaceAllString(skill, "")
	skill = strengthQualifier.ReplaceAllString(skill, "")
	skill = trailingQualifier.ReplaceAllString(skill, "")
	skill = parenthetical.ReplaceAllString(skill, "")
	skill = strings.Join(strings.Fields(skill), " ")

	parts := strings.Fields(skill)
	for i, part := range parts {
		lower := strings.ToLower(part)
		switch {
		case acronymTokens[lower]:
			parts[i] = strings.ToUpper(part)
		case dottedNameRe.MatchString(lower):
			parts[i] = lower
		default:
			parts[i] = titleWord(part)
		}
	}
	skill = strings.Join(parts, " ")

	if replacement, ok := skillReplacements[skill]; ok {
		skill = replacement
	}
	if len(skill) < 2 {
		return ""
	}
	return skill
}

// LooksLikeSkill reports whether a cleaned candidate plausibly names a skill.
// It rejects contact fragments, numeric-heavy tokens, generic nouns and
// anything longer than four words; it accepts pattern matches, dotted tech
// names, short acronyms and strings carrying a known tech marker.
func LooksLikeSkill(word string) bool {
	lower := strings.ToLower(strings.TrimSpace(word))

	if lower == "" || len(lower) < 2 || len(lower) > 60 {
		return false
	}
	for _, tok := range []string{"@", "http", "www", "email", "phone", "linkedin", "github"} {
		if strings.Contains(lower, tok) {
			return false
		}
	}
	if digitRunRe.MatchString(lower) && !digitExceptRe.MatchString(lower) {
		return false
	}
	if len(strings.Fields(lower)) > 4 {
		return false
	}
	if excludedWords[lower] {
		return false
	}
	for w := range excludedWords {
		if strings.HasSuffix(lower, " "+w) {
			return false
		}
	}

	if lower == "c++" || lower == "c#" {
		return true
	}
	for _, pattern := range allPatterns() {
		if pattern.MatchString(lower) {
			return true
		}
	}

	if dottedSuffixRe.MatchString(lower) || acronymLineRe.MatchString(word) || techMarkerRe.MatchString(lower) {
		return true
	}
	return false
}
