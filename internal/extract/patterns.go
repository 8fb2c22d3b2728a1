// Package extract pulls skill and keyword candidates out of free-form resume
// and job-posting text using a category-tagged pattern library, then cleans,
// filters and deduplicates them into a canonical skill list.
package extract

import "regexp"

// technicalPatterns match known technical skills, grouped by category.
// All patterns run against lowercased text.
var technicalPatterns = []*regexp.Regexp{
	// Programming languages
	regexp.MustCompile(`\b(python|java|javascript|typescript|c\+\+|c#|go|rust|swift|kotlin|ruby|php|perl|scala|dart)\b`),
	// Frontend
	regexp.MustCompile(`\b(react|angular|vue\.js|vuejs|next\.js|nextjs|nuxt\.js|nuxtjs|svelte|jquery|html5|css3|sass|less|bootstrap|tailwind)\b`),
	// Backend
	regexp.MustCompile(`\b(node\.js|nodejs|express\.js|expressjs|django|flask|spring|laravel|rails|fastapi|graphql|rest api|websocket)\b`),
	// Databases
	regexp.MustCompile(`\b(mysql|postgresql|mongodb|redis|sqlite|oracle|sql server|dynamodb|cassandra|elasticsearch|firebase)\b`),
	// Cloud and DevOps
	regexp.MustCompile(`\b(aws|azure|gcp|docker|kubernetes|terraform|ansible|jenkins|git|github|gitlab|ci/cd|devops)\b`),
	// Data and AI
	regexp.MustCompile(`\b(pandas|numpy|scikit-learn|tensorflow|pytorch|keras|opencv|nltk|spacy|tableau|power bi|machine learning|deep learning)\b`),
	// Mobile
	regexp.MustCompile(`\b(react native|flutter|android|ios|xcode|android studio)\b`),
	// Testing
	regexp.MustCompile(`\b(jest|mocha|chai|cypress|selenium|junit|pytest|unittest)\b`),
	// Methodologies and tools
	regexp.MustCompile(`\b(agile|scrum|kanban|waterfall|jira|confluence|figma|sketch|photoshop|illustrator)\b`),
}

// softPatterns match non-technical skills that job postings still name.
var softPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(communication|leadership|teamwork|problem.solving|critical thinking|creativity|adaptability|time management|collaboration|presentation|negotiation)\b`),
	regexp.MustCompile(`\b(project management|strategic planning|analytical skills|attention to detail|multitasking|decision making)\b`),
}

func allPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(technicalPatterns)+len(softPatterns))
	out = append(out, technicalPatterns...)
	out = append(out, softPatterns...)
	return out
}

// skillsSectionKeywords mark headings that open a skills section in a resume.
var skillsSectionKeywords = []string{
	"skills", "technical skills", "technologies", "competencies",
	"expertise", "qualifications", "proficiencies",
}

// sectionEndKeywords close a skills section when they appear on a line.
var sectionEndKeywords = []string{"experience", "education", "projects"}

var (
	emailRe       = regexp.MustCompile(`\S+@\S+`)
	urlRe         = regexp.MustCompile(`http[s]?://\S+|www\.\S+`)
	phoneRe       = regexp.MustCompile(`\+?\d[\d\s\-\(\)]{6,}\d`)
	sectionPrefix = regexp.MustCompile(`(?i)^(programming|frontend|backend|cloud|tools|skills|technical|technologies)\s*[:\-]\s*`)
	parenthetical = regexp.MustCompile(`\([^\)]*\)`)
	separatorRe   = regexp.MustCompile(`[,:;/•\-–—>|\\]`)
	tokenSplitRe  = regexp.MustCompile(`[\n,;:/\\|•\-–—]`)
	verbFragment  = regexp.MustCompile(`(?i)\b(built|developed|implemented|designed|worked|experience|using|with|responsible)\b`)
	digitRunRe    = regexp.MustCompile(`\d{2,}`)
	digitExceptRe = regexp.MustCompile(`(c\+\+|c#|r\d)`)
	// \b cannot close a match ending in + or #, so these get their own rule.
	symbolLanguageRe = regexp.MustCompile(`(^|[^a-z0-9_+#])(c\+\+|c#)($|[^a-z0-9_+#])`)
)

// excludedTerms are locations and other non-skill tokens dropped in the final
// filtering pass.
var excludedTerms = []string{
	"united states", "usa", "uk", "united kingdom", "canada", "germany", "france",
	"india", "china", "nigeria", "brazil", "russia", "australia",
}

// excludedWords are generic nouns that never stand alone as a skill.
var excludedWords = map[string]bool{
	"company": true, "university": true, "college": true, "school": true,
	"project": true, "team": true, "year": true, "years": true, "month": true,
	"months": true, "client": true, "customer": true, "user": true,
	"system": true, "service": true, "application": true, "software": true,
	"technology": true, "solution": true, "product": true, "management": true,
	"development": true, "engineering": true, "address": true, "street": true,
	"road": true, "city": true, "state": true, "country": true, "manager": true,
	"inc": true, "ltd": true,
}

// stripContactNoise removes emails, URLs and phone-like sequences so they never
// surface as skill candidates.
func stripContactNoise(text string) string {
	text = emailRe.ReplaceAllString(text, " ")
	text = urlRe.ReplaceAllString(text, " ")
	text = phoneRe.ReplaceAllString(text, " ")
	return text
}
