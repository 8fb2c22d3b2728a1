package analyze

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	minResumeTextLength = 100
	minResumeIndicators = 2
	// Graduates within this many years of the current year count as recent.
	recentGraduateWindow = 2
	// Assumed duration when an experience entry has no parseable dates.
	defaultYearsPerEntry = 1.5
)

// resumeIndicators is vocabulary a real resume is expected to use.
var resumeIndicators = []string{
	"experience", "education", "skills", "work history", "employment",
	"professional experience", "qualifications", "career", "university",
	"college", "bachelor", "master", "degree", "developer", "engineer",
	"manager", "analyst", "designer", "specialist", "consultant",
	"projects", "achievements", "certifications", "training", "responsibilities",
	"duties", "summary", "objective", "profile", "about me", "biography",
}

var (
	contactEmailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	contactPhoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	explicitYearsRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?(?:professional\s+)?(?:work\s+)?experience`),
	}
	yearRangeRe = regexp.MustCompile(`\b(20\d{2})\s*(?:-|–|—|to)\s*(20\d{2}|present|current)\b`)
	dateEntryRe = regexp.MustCompile(`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|\d{4}).*?(?:present|current|\d{4})`)

	graduationRes = []*regexp.Regexp{
		regexp.MustCompile(`graduated?[:\s]+(?:in\s+)?(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)?\.?\s*(\d{4})`),
		regexp.MustCompile(`graduation\s+(?:date|year)?[:\s]+(\d{4})`),
		regexp.MustCompile(`(?:bachelor|master|b\.?s\.?|m\.?s\.?|degree).*?(\d{4})`),
		regexp.MustCompile(`(?:expected|anticipated)\s+graduation[:\s]+(?:\w+\.?\s*)?(\d{4})`),
		regexp.MustCompile(`(?:class\s+of|graduating)\s+(\d{4})`),
		regexp.MustCompile(`(?:university|college).*?(\d{4})\s*(?:\n|gpa|dean)`),
	}
)

var internshipKeywords = []string{"intern", "internship", "trainee", "co-op", "cooperative education"}

var academicProjectKeywords = []string{
	"academic project", "university project", "course project", "capstone",
	"final year project", "thesis", "dissertation", "research project",
	"group project", "team project", "class project",
}

// degreeLadder orders degree vocabulary by level; contains-matching means
// possessive forms ("master's") hit the same entry.
var degreeLadder = []struct {
	term  string
	level int
}{
	{"phd", 5}, {"doctorate", 5},
	{"master", 4}, {"msc", 4}, {"mba", 4}, {"m.s", 4},
	{"bachelor", 3}, {"bsc", 3}, {"b.s", 3},
	{"associate degree", 2}, {"associate's", 2},
	{"diploma", 1},
}

// ValidateResume checks that the text plausibly is a resume. Returns a
// *ValidationError describing the first failed check.
func ValidateResume(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minResumeTextLength {
		return &ValidationError{
			Field:   "resume_text",
			Message: fmt.Sprintf("document is too short to be a resume (minimum %d characters required)", minResumeTextLength),
		}
	}

	lower := strings.ToLower(trimmed)
	hits := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(lower, indicator) {
			hits++
		}
	}
	if hits < minResumeIndicators {
		return &ValidationError{
			Field:   "resume_text",
			Message: fmt.Sprintf("document doesn't appear to be a resume; expected at least %d resume-related sections but found %d", minResumeIndicators, hits),
		}
	}

	if !contactEmailRe.MatchString(text) && !contactPhoneRe.MatchString(text) {
		return &ValidationError{
			Field:   "resume_text",
			Message: "document doesn't contain typical resume contact information (email or phone number)",
		}
	}
	return nil
}

// TotalExperienceYears estimates total professional experience from resume
// text. Explicit "N years of experience" statements win; otherwise year
// ranges are summed (minimum half a year each); otherwise dated entries are
// counted at a default duration apiece.
func TotalExperienceYears(text string) float64 {
	lower := strings.ToLower(text)

	best := 0
	for _, re := range explicitYearsRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if years, err := strconv.Atoi(m[1]); err == nil && years > best {
				best = years
			}
		}
	}
	if best > 0 {
		return float64(best)
	}

	currentYear := time.Now().Year()
	total := 0.0
	ranges := yearRangeRe.FindAllStringSubmatch(lower, -1)
	for _, m := range ranges {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if m[2] != "present" && m[2] != "current" {
			if parsed, err := strconv.Atoi(m[2]); err == nil {
				end = parsed
			}
		}
		span := float64(end - start)
		if span < 0.5 {
			span = 0.5
		}
		total += span
	}
	if total > 0 {
		return total
	}

	// Last resort: count dated entries in the experience section.
	if section := experienceSection(lower); section != "" {
		entries := dateEntryRe.FindAllString(section, -1)
		return float64(len(entries)) * defaultYearsPerEntry
	}
	return 0
}

func experienceSection(lower string) string {
	idx := strings.Index(lower, "experience")
	if idx < 0 {
		return ""
	}
	section := lower[idx:]
	end := len(section)
	skip := len("experience")
	for _, stop := range []string{"education", "skills", "projects"} {
		if i := strings.Index(section[skip:], stop); i >= 0 && i+skip < end {
			end = i + skip
		}
	}
	return section[:end]
}

// HighestDegreeLevel returns the candidate's highest degree on the ordinal
// ladder (phd 5 ... diploma 1), or 0 when no degree is stated.
func HighestDegreeLevel(text string) int {
	return degreeLevel(strings.ToLower(text))
}

// DegreeRequirementLevel returns the degree level a job posting asks for, or 0
// when no requirement is stated.
func DegreeRequirementLevel(jobText string) int {
	return degreeLevel(strings.ToLower(jobText))
}

func degreeLevel(lower string) int {
	level := 0
	for _, entry := range degreeLadder {
		if strings.Contains(lower, entry.term) && entry.level > level {
			level = entry.level
		}
	}
	return level
}

// Graduate classifies whether the resume belongs to a recent graduate and
// reports the signals behind the call.
func Graduate(text string) types.GraduateSignals {
	lower := strings.ToLower(text)
	currentYear := time.Now().Year()

	signals := types.GraduateSignals{
		ExperienceYears: TotalExperienceYears(text),
	}

	latest := 0
	for _, re := range graduationRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			year, err := strconv.Atoi(m[len(m)-1])
			if err != nil {
				continue
			}
			if year >= 2015 && year <= currentYear+1 && year > latest {
				latest = year
			}
		}
	}
	if latest > 0 {
		signals.GraduationYear = latest
	}

	for _, keyword := range internshipKeywords {
		if strings.Contains(lower, keyword) {
			signals.HasInternship = true
			break
		}
	}
	for _, keyword := range academicProjectKeywords {
		if strings.Contains(lower, keyword) {
			signals.HasAcademicProjects = true
			break
		}
	}

	recentGrad := latest > 0 && currentYear-latest <= recentGraduateWindow
	limited := signals.ExperienceYears < 2
	signals.RecentGraduate = recentGrad || (limited && (signals.HasInternship || signals.HasAcademicProjects))
	return signals
}
