package analyze

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	minJobTextLength = 100
	maxNumericRatio  = 0.6
	// Limits on the section lists carried into the profile.
	maxResponsibilities = 8
	maxQualifications   = 5
	maxBulletFallback   = 6
	rawExcerptLength    = 500
)

// jobIndicators is the vocabulary a plausible job posting uses. Fewer than
// two hits means the text is probably not a posting at all.
var jobIndicators = []string{
	"responsibilities", "requirements", "qualifications", "experience",
	"skills", "role", "position", "candidate", "team", "salary", "benefits",
	"apply", "we are looking", "you will", "job",
}

var seniorIndicators = []string{
	"senior", "lead", "principal", "staff", "5+ years", "5 years", "5+",
	"6+ years", "7+ years", "8+ years", "10+ years", "experienced", "expert",
}

var midIndicators = []string{
	"mid-level", "mid level", "3+ years", "3 years", "4+ years", "4 years",
	"2-5 years", "3-5 years", "intermediate",
}

var juniorIndicators = []string{
	"junior", "entry level", "entry-level", "0-2 years", "1-2 years",
	"0-1 years", "recent graduate", "new graduate", "fresher", "associate",
}

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(senior|junior|lead|principal)?\s*(software|frontend|backend|full\s*stack|web|mobile)\s+(developer|engineer)`),
	regexp.MustCompile(`^(data scientist|data analyst|devops engineer|product manager|project manager|ui/ux designer|ux/ui designer)`),
	regexp.MustCompile(`^(machine learning engineer|ml engineer|ai engineer|cloud engineer|solutions architect)`),
	regexp.MustCompile(`^(business analyst|systems analyst|qa engineer|test engineer|quality assurance)`),
	regexp.MustCompile(`^(technical lead|team lead|engineering manager|cto|technical director)`),
}

var (
	titleCasedLineRe = regexp.MustCompile(`^[A-Z][a-zA-Z\s&]+$`)
	bulletPrefixRe   = regexp.MustCompile(`^[•·\-–—*\d.]`)
	bulletStripRe    = regexp.MustCompile(`^[•·\-–—*\d.\s]+`)
	companyCleanRe   = regexp.MustCompile(`[^\w\s&]`)
)

// Job analyzes a job posting and returns its structured profile. It returns a
// *ValidationError when the text does not plausibly describe a job.
func Job(text string) (*types.JobProfile, error) {
	if err := validateJobText(text); err != nil {
		return nil, err
	}

	excerpt := strings.TrimSpace(text)
	if len(excerpt) > rawExcerptLength {
		// Back off to a rune boundary so the cut never leaves invalid UTF-8.
		cut := rawExcerptLength
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut] + "..."
	}

	return &types.JobProfile{
		Title:            extractTitle(text),
		Company:          extractCompany(text),
		ExperienceLevel:  extractExperienceLevel(text),
		RequiredSkills:   extract.Skills(text),
		Responsibilities: extractResponsibilities(text),
		Qualifications:   extractQualifications(text),
		RawExcerpt:       excerpt,
	}, nil
}

func validateJobText(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minJobTextLength {
		return &ValidationError{
			Field:   "job_text",
			Message: fmt.Sprintf("document is too short to be a job posting (minimum %d characters required)", minJobTextLength),
		}
	}

	var digits, letters int
	for _, r := range trimmed {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if digits+letters > 0 && float64(digits)/float64(digits+letters) > maxNumericRatio {
		return &ValidationError{
			Field:   "job_text",
			Message: "document is dominated by numeric content and does not look like a job posting",
		}
	}

	lower := strings.ToLower(trimmed)
	hits := 0
	for _, indicator := range jobIndicators {
		if strings.Contains(lower, indicator) {
			hits++
		}
	}
	if hits < 2 {
		return &ValidationError{
			Field:   "job_text",
			Message: fmt.Sprintf("document doesn't appear to be a job posting; expected at least 2 job-related sections but found %d", hits),
		}
	}
	return nil
}

// extractTitle tries labeled role patterns on the first lines, then short
// title-cased lines, then the first line, before giving up with the sentinel.
func extractTitle(text string) string {
	lines := strings.Split(text, "\n")

	checked := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		checked++
		if checked > 10 {
			break
		}

		lower := strings.ToLower(trimmed)
		for _, pattern := range titlePatterns {
			if pattern.MatchString(lower) {
				return trimmed
			}
		}

		if len(trimmed) < 50 && titleCasedLineRe.MatchString(trimmed) &&
			!containsAnyOf(lower, "company", "location", "salary", "apply") {
			return trimmed
		}
	}

	for _, line := range lines {
		first := strings.TrimSpace(line)
		if first != "" {
			if len(first) < 100 {
				return first
			}
			break
		}
	}
	return types.TitleNotSpecified
}

func extractCompany(text string) string {
	lines := strings.Split(text, "\n")
	indicators := []string{"company:", "organization:", "firm:", " at "}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		for _, indicator := range indicators {
			idx := strings.Index(lower, indicator)
			if idx < 0 {
				continue
			}
			company := strings.TrimSpace(trimmed[idx+len(indicator):])
			company = strings.TrimSpace(companyCleanRe.ReplaceAllString(company, ""))
			if company != "" && len(company) < 50 {
				return company
			}
		}
	}
	return ""
}

// extractExperienceLevel picks the seniority bucket, most senior first; the
// first matching bucket wins.
func extractExperienceLevel(text string) types.ExperienceLevel {
	lower := strings.ToLower(text)
	if containsAnyIndicator(lower, seniorIndicators) {
		return types.LevelSenior
	}
	if containsAnyIndicator(lower, midIndicators) {
		return types.LevelMid
	}
	if containsAnyIndicator(lower, juniorIndicators) {
		return types.LevelJunior
	}
	return types.LevelNotSpecified
}

func extractResponsibilities(text string) []string {
	keywords := []string{
		"responsibilities", "duties", "what you will do", "key responsibilities",
		"role and responsibilities", "you will", "your role",
	}
	stop := []string{"requirements", "qualifications", "skills", "education"}

	items := collectSection(text, keywords, stop)
	if len(items) == 0 {
		items = extractBulletPoints(text)
	}
	if len(items) > maxResponsibilities {
		items = items[:maxResponsibilities]
	}
	return items
}

func extractQualifications(text string) []string {
	keywords := []string{
		"qualifications", "requirements", "must have", "required",
		"we require", "you must have", "essential", "minimum qualifications",
	}
	stop := []string{"responsibilities", "duties", "benefits", "compensation"}

	items := collectSection(text, keywords, stop)

	// Education requirements count as qualifications even outside the section.
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if containsAnyOf(lower, "bachelor", "master", "phd", "degree", "diploma") &&
			containsAnyOf(lower, "in computer science", "in engineering", "or equivalent", "required", "preferred") {
			items = append(items, strings.TrimSpace(line))
		}
	}

	seen := map[string]bool{}
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			unique = append(unique, item)
		}
	}
	if len(unique) > maxQualifications {
		unique = unique[:maxQualifications]
	}
	return unique
}

// collectSection gathers cleaned lines between a section heading and the next
// unrelated section or blank line.
func collectSection(text string, keywords, stop []string) []string {
	var out []string
	var section []string
	inSection := false

	flush := func() {
		out = append(out, cleanSectionLines(section, keywords)...)
		section = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if containsAnyIndicator(lower, keywords) {
			flush()
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if trimmed == "" {
			if len(section) > 0 {
				flush()
			}
			inSection = false
			continue
		}
		if containsAnyIndicator(lower, stop) {
			break
		}
		section = append(section, trimmed)
	}
	flush()
	return out
}

// cleanSectionLines merges continuation lines into their bullet and strips
// bullet markers.
func cleanSectionLines(lines, headingWords []string) []string {
	var cleaned []string
	current := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || containsAnyIndicator(strings.ToLower(trimmed), headingWords) {
			continue
		}
		if bulletPrefixRe.MatchString(trimmed) {
			if current != "" {
				cleaned = append(cleaned, strings.TrimSpace(current))
			}
			current = bulletStripRe.ReplaceAllString(trimmed, "")
		} else if current != "" {
			current += " " + trimmed
		} else {
			current = trimmed
		}
	}
	if current != "" {
		cleaned = append(cleaned, strings.TrimSpace(current))
	}

	var out []string
	for _, item := range cleaned {
		if len(item) > 8 {
			out = append(out, item)
		}
	}
	return out
}

func extractBulletPoints(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !bulletPrefixRe.MatchString(trimmed) {
			continue
		}
		cleaned := bulletStripRe.ReplaceAllString(trimmed, "")
		if len(cleaned) > 10 && len(cleaned) < 200 {
			bullets = append(bullets, cleaned)
		}
		if len(bullets) == maxBulletFallback {
			break
		}
	}
	return bullets
}

func containsAnyIndicator(s string, indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(s, indicator) {
			return true
		}
	}
	return false
}

func containsAnyOf(s string, terms ...string) bool {
	return containsAnyIndicator(s, terms)
}
