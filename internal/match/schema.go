package match

import (
	"github.com/go-playground/validator/v10"

	"hirelens/pkg/models"
)

var validate = validator.New()

// keywordPayload is the wire shape of the keyword-extraction response.
// Model output is validated structurally right after JSON repair; nothing
// downstream touches an unvalidated payload.
type keywordPayload struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	Industry   []string `json:"industry"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Culture    []string `json:"culture"`
}

func (p *keywordPayload) toRequirements() *models.JobRequirements {
	return &models.JobRequirements{
		Technical:  emptyIfNil(p.Technical),
		Soft:       emptyIfNil(p.Soft),
		Industry:   emptyIfNil(p.Industry),
		Experience: emptyIfNil(p.Experience),
		Education:  emptyIfNil(p.Education),
		Culture:    emptyIfNil(p.Culture),
	}
}

// validateKeywordPayload checks the structural shape of an extraction. An
// all-empty payload is allowed: a description with no recognizable
// requirements legitimately yields a zero keyword score downstream.
func validateKeywordPayload(p *keywordPayload) error {
	return validate.Struct(p)
}

// analysisPayload is the wire shape of the full-analysis response. The two
// scores are pointers so a payload that omits them entirely is told apart
// from one that legitimately reports zero.
type analysisPayload struct {
	Scores struct {
		Skills     *float64 `json:"skills" validate:"required"`
		Experience *float64 `json:"experience" validate:"required"`
	} `json:"scores"`
	SemanticMatch struct {
		Similarity    float64  `json:"similarity"`
		RelatedSkills []string `json:"related_skills"`
		Reasoning     string   `json:"reasoning"`
	} `json:"semantic_match"`
	KeywordAnalysis struct {
		Matched []string `json:"matched"`
		Missing []string `json:"missing"`
	} `json:"keyword_analysis"`
	Feedback        []string `json:"feedback"`
	Recommendations []string `json:"recommendations"`
}

func validateAnalysisPayload(p *analysisPayload) error {
	return validate.Struct(p)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
