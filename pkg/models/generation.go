package models

// CoverLetter is the structured draft produced by the cover-letter generator.
type CoverLetter struct {
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Highlights []string `json:"highlights"`
}

// GeneratedJobDescription is the structured draft produced by the
// job-description generator.
type GeneratedJobDescription struct {
	Summary          string   `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Benefits         []string `json:"benefits"`
}

// GenerateCoverLetterResponse is the envelope for cover-letter generation.
// Fallback is true when the generator substituted its default draft because
// the model response could not be parsed.
type GenerateCoverLetterResponse struct {
	Success     bool         `json:"success"`
	CoverLetter *CoverLetter `json:"cover_letter,omitempty"`
	Fallback    bool         `json:"fallback"`
	RequestID   string       `json:"request_id"`
}

// GenerateJobDescriptionResponse is the envelope for job-description
// generation.
type GenerateJobDescriptionResponse struct {
	Success        bool                     `json:"success"`
	JobDescription *GeneratedJobDescription `json:"job_description,omitempty"`
	Fallback       bool                     `json:"fallback"`
	RequestID      string                   `json:"request_id"`
}
