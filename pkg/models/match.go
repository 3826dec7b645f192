package models

import "time"

// ExtractedKeywords carries the keyword sets produced during analysis.
// MatchedSkills and MissingSkills are disjoint subsets of JobRequirements
// after case/whitespace normalization.
type ExtractedKeywords struct {
	JobRequirements []string `json:"job_requirements"`
	CandidateSkills []string `json:"candidate_skills"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

// SemanticMatch holds the model's judgment of conceptual overlap beyond
// literal keyword hits.
type SemanticMatch struct {
	Similarity    float64  `json:"similarity"`
	RelatedSkills []string `json:"related_skills,omitempty"`
	Reasoning     string   `json:"reasoning,omitempty"`
}

// MatchDetails exposes the weighted contribution of each sub-score.
// The values sum to OverallScore within floating-point tolerance.
type MatchDetails struct {
	WeightedScores map[string]float64 `json:"weighted_scores"`
}

// MatchResult is the immutable outcome of one candidate-job analysis.
// A new analysis produces a new MatchResult; the persisted blob for the
// application id is overwritten last-write-wins, never versioned.
type MatchResult struct {
	JobID             string            `json:"job_id"`
	ApplicationID     string            `json:"application_id"`
	OverallScore      float64           `json:"overall_score"`
	SkillsScore       float64           `json:"skills_score"`
	ExperienceScore   float64           `json:"experience_score"`
	LocationScore     float64           `json:"location_score"`
	SalaryScore       float64           `json:"salary_score"`
	ExtractedKeywords ExtractedKeywords `json:"extracted_keywords"`
	SemanticMatch     SemanticMatch     `json:"semantic_match"`
	MatchDetails      MatchDetails      `json:"match_details"`
	Feedback          []string          `json:"feedback,omitempty"`
	Recommendations   []string          `json:"recommendations"`
	AnalyzedAt        time.Time         `json:"analyzed_at"`
}
