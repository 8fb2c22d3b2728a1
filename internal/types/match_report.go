package types

// Scoring methods recorded on a MatchReport. The semantic method is only
// reported when an embedding round trip actually succeeded.
const (
	MethodBasicTFIDF        = "basic_tfidf"
	MethodSemanticEmbedding = "semantic_embedding"
)

// MatchReport is the full output of scoring one resume against one job posting.
// All scores are on a 0-100 scale, rounded to two decimal places.
type MatchReport struct {
	OverallScore    float64 `json:"overall_score"`
	LexicalScore    float64 `json:"lexical_score"`
	SemanticScore   float64 `json:"semantic_score,omitempty"`
	SkillScore      float64 `json:"skill_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	TotalRequired int      `json:"total_required"`

	CandidateYears float64 `json:"candidate_years"`

	Method         string `json:"method"`
	Recommendation string `json:"recommendation"`
}
